package dbg

import "fmt"

// Strategy names a node identity strategy.
type Strategy string

const (
	// StrategyPropagate copies identities along adjacency lists (Builder).
	StrategyPropagate Strategy = "propagate"
	// StrategyContent keys nodes by (k-1)-mer content (BuildByContent).
	StrategyContent Strategy = "content"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyPropagate, StrategyContent:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown strategy %q (want %q or %q)", s, StrategyPropagate, StrategyContent)
	}
}
