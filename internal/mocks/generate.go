package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name StatsProvider --dir ../usecase --output statsmock --outpkg statsmock --filename stats_provider_mock.go
