package events

import "context"

type SGPAUpdatedEvent struct {
	SGPA         float64 `json:"sgpa"`
	TotalCredits float64 `json:"totalCredits"`
	CourseCount  int     `json:"courseCount"`
}

type Producer interface {
	ProduceSGPAUpdatedEvent(ctx context.Context, evt SGPAUpdatedEvent) error
}

// NopProducer 不需要推送的时候用
type NopProducer struct{}

func (NopProducer) ProduceSGPAUpdatedEvent(ctx context.Context, evt SGPAUpdatedEvent) error {
	return nil
}
