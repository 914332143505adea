package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version      string   `json:"version"`
		ShareSignKey string   `json:"share_sign_key"`
		ShareTTL     Duration `json:"share_ttl"`
		HashKey      string   `json:"hash_key"`
		DeviceID     string   `json:"device_id"`
		LogDir       string   `json:"log_dir"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Render struct {
		Size         int    `json:"size"`
		ColorDark    string `json:"color_dark"`
		ColorLight   string `json:"color_light"`
		CorrectLevel string `json:"correct_level"`
		Padding      int    `json:"padding"`
	} `json:"render,omitempty"`

	Cache struct {
		Address  string   `json:"address"`
		Password string   `json:"password"`
		DB       int      `json:"db"`
		TTL      Duration `json:"ttl"`
	} `json:"cache,omitempty"`

	Templates struct {
		FilePath string `json:"file"`
	} `json:"templates,omitempty"`

	History struct {
		MaxItems int `json:"max_items"`
	} `json:"history,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:      j.App.Version,
			ShareSignKey: j.App.ShareSignKey,
			ShareTTL:     time.Duration(j.App.ShareTTL),
			HashKey:      j.App.HashKey,
			DeviceID:     j.App.DeviceID,
			LogDir:       j.App.LogDir,
		},
		Storage: Storage{
			DB: DB{DSN: j.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			GRPCAddress:    j.Server.GRPCAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		Render: Render{
			Size:         j.Render.Size,
			ColorDark:    j.Render.ColorDark,
			ColorLight:   j.Render.ColorLight,
			CorrectLevel: j.Render.CorrectLevel,
			Padding:      j.Render.Padding,
		},
		Cache: Cache{
			Address:  j.Cache.Address,
			Password: j.Cache.Password,
			DB:       j.Cache.DB,
			TTL:      time.Duration(j.Cache.TTL),
		},
		Templates: Templates{FilePath: j.Templates.FilePath},
		History:   History{MaxItems: j.History.MaxItems},
		Workers:   Workers{SyncInterval: time.Duration(j.Workers.SyncInterval)},
	}, nil
}

// Duration wraps time.Duration so it can be read from "1h"-style strings
// as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
