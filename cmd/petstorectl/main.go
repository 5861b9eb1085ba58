package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/Apurer/petstore-api/internal/app/ctl"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := ctl.Execute(ctx, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "petstorectl:", err)
		os.Exit(1)
	}
}
