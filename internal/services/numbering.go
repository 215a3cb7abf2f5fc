package services

import (
	"fmt"
	"math/rand"
	"time"
)

// Order codes look like OS-2025-4821: the current year plus a random
// four digit suffix. The generator itself does not check for
// collisions, the unique index on service_orders.code is the backstop.
const (
	orderCodeMinSuffix = 1000
	orderCodeMaxSuffix = 9999
)

type OrderCodeGeneratorInterface interface {
	Generate(now time.Time) string
}

type OrderCodeGenerator struct {
	intn func(n int) int
}

func NewOrderCodeGenerator() OrderCodeGeneratorInterface {
	return &OrderCodeGenerator{intn: rand.Intn}
}

func (g *OrderCodeGenerator) Generate(now time.Time) string {
	suffix := orderCodeMinSuffix + g.intn(orderCodeMaxSuffix-orderCodeMinSuffix+1)
	return fmt.Sprintf("OS-%d-%d", now.Year(), suffix)
}
