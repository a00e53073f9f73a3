package upstream

type IDRef struct {
	ID *int64 `json:"id"`
}

type NamedRef struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

type PersonRef struct {
	ID       *int64  `json:"id"`
	FullName *string `json:"fullName"`
}

type CodeDescription struct {
	Code        *string `json:"code"`
	Description *string `json:"description"`
}

type Position struct {
	Code         *string `json:"code"`
	Name         *string `json:"name"`
	Type         *string `json:"type"`
	Abbreviation *string `json:"abbreviation"`
}

type GameStatus struct {
	AbstractGameState *string `json:"abstractGameState"`
	CodedGameState    *string `json:"codedGameState"`
	DetailedState     *string `json:"detailedState"`
	StatusCode        *string `json:"statusCode"`
}

const AbstractStateFinal = "Final"

func (s GameStatus) IsFinal() bool {
	return s.AbstractGameState != nil && *s.AbstractGameState == AbstractStateFinal
}
