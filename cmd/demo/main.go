package main

import (
	"context"
	"fmt"
	"os"

	t "github.com/user/tautology"
	"github.com/user/tautology/packages/logger"
	"github.com/user/tautology/packages/logic"
)

const sentence = "~(p ∨ ~q) → (~p ∨ q)"

func main() {
	fmt.Println("=== Tautology Demo ===")
	fmt.Println()

	log := logger.NewLogger(nil)
	checker, err := t.New(t.WithLogger(log))
	if err != nil {
		log.Error("failed to create checker", "error", err)
		os.Exit(1)
	}

	res, err := checker.Check(context.Background(), sentence)
	if err != nil {
		d := logic.Diagnose(err)
		log.Error("check failed", "code", d.Code, "pos", d.Pos, "error", err)
		os.Exit(1)
	}

	fmt.Printf("input:     %s\n", res.Sentence)
	fmt.Printf("canonical: %s\n", res.Canonical)
	fmt.Printf("models:    %d of %d visited\n", res.Visited, res.Total)
	fmt.Println()
	if res.IsTautology() {
		fmt.Printf("%s IS a tautology\n", res.Canonical)
		return
	}
	fmt.Printf("%s is NOT a tautology\n", res.Canonical)
}
