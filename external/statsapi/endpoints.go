package statsapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/mlb-stats/internal/platform/cache"
	"github.com/riskibarqy/mlb-stats/internal/upstream"
)

const dateLayout = "2006-01-02"

// Schedule lists games of every type between start and end inclusive.
func (c *Client) Schedule(ctx context.Context, start, end time.Time) (upstream.Schedule, error) {
	query := url.Values{}
	query.Set("sportId", "1")
	query.Set("startDate", start.Format(dateLayout))
	query.Set("endDate", end.Format(dateLayout))

	raw, err := c.Fetch(ctx, "v1/schedule", query)
	if err != nil {
		return upstream.Schedule{}, err
	}
	return upstream.Decode[upstream.Schedule](raw)
}

func (c *Client) GameFeed(ctx context.Context, gamePK int64) (upstream.GameFeed, error) {
	return gameDocument[upstream.GameFeed](ctx, c, cache.KindGameFeed, gamePK)
}

func (c *Client) Boxscore(ctx context.Context, gamePK int64) (upstream.Boxscore, error) {
	return gameDocument[upstream.Boxscore](ctx, c, cache.KindBoxscore, gamePK)
}

func (c *Client) PlayByPlay(ctx context.Context, gamePK int64) (upstream.PlayByPlay, error) {
	return gameDocument[upstream.PlayByPlay](ctx, c, cache.KindPlayByPlay, gamePK)
}

func (c *Client) Team(ctx context.Context, teamID int64) (upstream.Team, error) {
	raw, err := c.Fetch(ctx, "v1/teams/"+strconv.FormatInt(teamID, 10), nil)
	if err != nil {
		return upstream.Team{}, err
	}
	resp, err := upstream.Decode[upstream.TeamsResponse](raw)
	if err != nil {
		return upstream.Team{}, err
	}
	return resp.Teams[0], nil
}

// Teams lists every MLB club.
func (c *Client) Teams(ctx context.Context) ([]upstream.Team, error) {
	query := url.Values{}
	query.Set("sportId", "1")
	raw, err := c.Fetch(ctx, "v1/teams", query)
	if err != nil {
		return nil, err
	}
	resp, err := upstream.Decode[upstream.TeamsResponse](raw)
	if err != nil {
		return nil, err
	}
	return resp.Teams, nil
}

func (c *Client) Player(ctx context.Context, playerID int64) (upstream.Person, error) {
	raw, err := c.Fetch(ctx, "v1/people/"+strconv.FormatInt(playerID, 10), nil)
	if err != nil {
		return upstream.Person{}, err
	}
	resp, err := upstream.Decode[upstream.PeopleResponse](raw)
	if err != nil {
		return upstream.Person{}, err
	}
	return resp.People[0], nil
}

type peopleBatch struct {
	People []upstream.Person `json:"people" validate:"dive"`
}

// Players fetches several people in one request. Unknown ids are silently absent.
func (c *Client) Players(ctx context.Context, ids []int64) ([]upstream.Person, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	query := url.Values{}
	query.Set("personIds", strings.Join(parts, ","))

	raw, err := c.Fetch(ctx, "v1/people", query)
	if err != nil {
		return nil, err
	}
	resp, err := upstream.Decode[peopleBatch](raw)
	if err != nil {
		return nil, err
	}
	return resp.People, nil
}

// Venue fetches a venue as it was configured in the given season.
func (c *Client) Venue(ctx context.Context, venueID int64, season int) (upstream.Venue, error) {
	query := url.Values{}
	query.Set("hydrate", "location,fieldInfo,timezone")
	query.Set("season", strconv.Itoa(season))

	raw, err := c.Fetch(ctx, "v1/venues/"+strconv.FormatInt(venueID, 10), query)
	if err != nil {
		return upstream.Venue{}, err
	}
	resp, err := upstream.Decode[upstream.VenuesResponse](raw)
	if err != nil {
		return upstream.Venue{}, err
	}
	return resp.Venues[0], nil
}

// Roster returns the active roster of a team on date.
func (c *Client) Roster(ctx context.Context, teamID int64, date time.Time) (upstream.Roster, error) {
	query := url.Values{}
	query.Set("date", date.Format(dateLayout))

	raw, err := c.Fetch(ctx, "v1/teams/"+strconv.FormatInt(teamID, 10)+"/roster/active", query)
	if err != nil {
		return upstream.Roster{}, err
	}
	return upstream.Decode[upstream.Roster](raw)
}

// Raw returns the undecoded document for a game kind, honoring the cache gate.
func (c *Client) Raw(ctx context.Context, kind cache.Kind, gamePK int64) ([]byte, error) {
	path, err := gamePath(kind, gamePK)
	if err != nil {
		return nil, err
	}
	return c.fetchGameDocument(ctx, kind, gamePK, path)
}

func gamePath(kind cache.Kind, gamePK int64) (string, error) {
	pk := strconv.FormatInt(gamePK, 10)
	switch kind {
	case cache.KindGameFeed:
		return "v1.1/game/" + pk + "/feed/live", nil
	case cache.KindBoxscore:
		return "v1/game/" + pk + "/boxscore", nil
	case cache.KindPlayByPlay:
		return "v1/game/" + pk + "/playByPlay", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// gameDocument decodes a per-game document. A cached copy that no longer decodes is
// dropped and fetched again.
func gameDocument[T any](ctx context.Context, c *Client, kind cache.Kind, gamePK int64) (T, error) {
	var zero T
	path, err := gamePath(kind, gamePK)
	if err != nil {
		return zero, err
	}

	raw, err := c.fetchGameDocument(ctx, kind, gamePK, path)
	if err != nil {
		return zero, err
	}
	doc, err := upstream.Decode[T](raw)
	if err == nil || c.cache == nil || !crerr.Is(err, upstream.ErrInvalidDocument) {
		return doc, err
	}

	key := strconv.FormatInt(gamePK, 10)
	if !c.cache.Exists(kind, key) {
		return doc, err
	}
	c.logger.WarnContext(ctx, "cached document is corrupt, refetching", "kind", kind, "game_pk", gamePK, "error", err)
	if delErr := c.cache.Delete(kind, key); delErr != nil {
		return zero, delErr
	}
	raw, err = c.fetchGameDocument(ctx, kind, gamePK, path)
	if err != nil {
		return zero, err
	}
	return upstream.Decode[T](raw)
}
