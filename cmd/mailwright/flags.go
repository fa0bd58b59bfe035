// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mailwright/internal/gateway"
)

// bindFlag ties a viper key to a flag. Binding only fails for a nil flag,
// which is a programming error.
func bindFlag(key string, f *pflag.Flag) {
	if err := viper.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("binding flag for %s: %v", key, err))
	}
}

// printResult writes v to w as indented JSON or YAML.
func printResult(w io.Writer, format string, v any) error {
	switch format {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q: use json or yaml", format)
}

// logGatewayError records the upstream body of a rejected model call, which
// the returned error deliberately omits.
func logGatewayError(log *zap.Logger, err error) {
	var se *gateway.StatusError
	if errors.As(err, &se) {
		log.Error("model gateway error", zap.Int("status", se.StatusCode), zap.String("body", se.Body))
	}
}
