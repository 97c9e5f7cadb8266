package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"inpyeon/backend/internal/client"
)

func main() {
	server := flag.String("server", "http://localhost:4001", "인편 서버 주소")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api := client.NewAPI(*server)
	app := client.NewApp(api, os.Stdin, os.Stdout)

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "오류: %v\n", err)
		os.Exit(1)
	}
}
