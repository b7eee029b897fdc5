package services

import (
	"context"
	"time"

	awspkg "github.com/YeshwantRaoB/organizon-web/pkg/aws"
)

// recordCount publishes a business counter off the request path.
func recordCount(m *awspkg.MetricsClient, name string, dims map[string]string) {
	recordValue(m, name, 1, dims)
}

func recordValue(m *awspkg.MetricsClient, name string, value float64, dims map[string]string) {
	if !m.IsEnabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = m.RecordValue(ctx, name, value, dims)
	}()
}
