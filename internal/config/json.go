// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		AdminEmail    string `json:"admin_email"`
		AdminPassword string `json:"admin_password"`
		TokenSignKey  string `json:"token_sign_key"`
		TokenIssuer   string `json:"token_issuer"`
		LogLevel      string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		Port           int      `json:"port"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		SubmissionURL  string   `json:"submission_url"`
		DeliveryURL    string   `json:"delivery_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	CORS struct {
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"cors,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AdminEmail:    jsonCfg.App.AdminEmail,
			AdminPassword: jsonCfg.App.AdminPassword,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			Port:           jsonCfg.Server.Port,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			SubmissionURL:  jsonCfg.Adapter.SubmissionURL,
			DeliveryURL:    jsonCfg.Adapter.DeliveryURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		CORS: CORS{
			AllowedOrigins: jsonCfg.CORS.AllowedOrigins,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
