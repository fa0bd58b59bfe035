// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main runs the mailwright endpoints as an AWS Lambda function
// behind API Gateway. Configuration comes from MAILWRIGHT_* and
// ANTHROPIC_API_KEY environment variables.
package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/mailwright/internal/braindump"
	"github.com/pdiddy/mailwright/internal/compose"
	"github.com/pdiddy/mailwright/internal/config"
	"github.com/pdiddy/mailwright/internal/gateway"
	"github.com/pdiddy/mailwright/internal/handler"
	"github.com/pdiddy/mailwright/internal/lambdaproxy"
	"github.com/pdiddy/mailwright/internal/logging"
	"github.com/pdiddy/mailwright/internal/server"
)

func main() {
	v := viper.New()
	config.SetDefaults(v)
	cfg, err := config.Load(v, ".secrets/", os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// A missing key is logged rather than fatal: the function still answers
	// validation errors and every model call fails with the upstream 401.
	if err := config.RequireAPIKey(cfg); err != nil {
		log.Warn("model api key not configured", zap.Error(err))
	}

	client := gateway.NewClient(cfg.Gateway, nil)
	h := handler.New(braindump.NewExtractor(client), compose.NewGenerator(client), log)

	log.Info("lambda ready", zap.String("model", client.Model()))
	lambda.Start(lambdaproxy.New(server.NewHandler(h, log)).Handle)
}
