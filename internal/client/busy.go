package client

import "context"

// FixedBusyLevelProvider always reports the same busy level. Stands in
// for a real popularity feed until one is wired up.
type FixedBusyLevelProvider struct {
	Level int
}

func NewFixedBusyLevelProvider() *FixedBusyLevelProvider {
	return &FixedBusyLevelProvider{Level: 75}
}

func (p *FixedBusyLevelProvider) BusyLevel(ctx context.Context, placeID string) (int, error) {
	return p.Level, nil
}
