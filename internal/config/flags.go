package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"time"
)

// NetAddress is a host:port pair implementing flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses os.Args.
//
// Flags:
//
//	-a               HTTP listen address host:port
//	-grpc-address    gRPC listen address host:port
//	-d               database DSN
//	-c, -config      JSON config file path
//	-hash-key        HMAC key for the HashSHA256 header
//	-share-sign-key  share token signing key
//	-share-ttl       share link lifetime (e.g. "24h")
//	-request-timeout request timeout (e.g. "10s")
//	-server          server address used by the client
//	-device-id       client device id
//	-size            default symbol size in pixels
//	-level           default correction level L|M|Q|H
//	-redis           Redis address for the render cache
//	-templates       YAML file with extra templates
//	-history-max     history entries kept per device
//	-sync-interval   client history sync interval
//	-log-dir         client log directory
//	-offline         run the client without a server
func ParseFlags() (*StructuredConfig, error) {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	return parseFlags(fs, os.Args[1:])
}

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("qr-forge", flag.ContinueOnError)
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var (
		httpAddress, grpcAddress NetAddress

		databaseDSN    string
		jsonConfigPath string
		hashKey        string
		shareSignKey   string
		shareTTL       time.Duration
		requestTimeout time.Duration
		serverAddress  string
		deviceID       string
		size           int
		level          string
		redisAddress   string
		templatesFile  string
		historyMax     int
		syncInterval   time.Duration
		logDir         string
		offline        bool
	)

	fs.Var(&httpAddress, "a", "HTTP address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Request hash key")
	fs.StringVar(&shareSignKey, "share-sign-key", "", "Share token signing key")
	fs.DurationVar(&shareTTL, "share-ttl", 0, "Share link lifetime (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&serverAddress, "server", "", "Server address used by the client")
	fs.StringVar(&deviceID, "device-id", "", "Client device id")
	fs.IntVar(&size, "size", 0, "Default QR size in pixels")
	fs.StringVar(&level, "level", "", "Default error correction level (L, M, Q, H)")
	fs.StringVar(&redisAddress, "redis", "", "Redis address for the render cache")
	fs.StringVar(&templatesFile, "templates", "", "YAML file with extra templates")
	fs.IntVar(&historyMax, "history-max", 0, "History entries kept per device")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "History sync interval")
	fs.StringVar(&logDir, "log-dir", "", "Client log directory")
	fs.BoolVar(&offline, "offline", false, "Run the client without a server")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			ShareSignKey: shareSignKey,
			ShareTTL:     shareTTL,
			HashKey:      hashKey,
			DeviceID:     deviceID,
			LogDir:       logDir,
			Offline:      offline,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    httpAddress.String(),
			GRPCAddress:    grpcAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Render: Render{
			Size:         size,
			CorrectLevel: level,
		},
		Cache:        Cache{Address: redisAddress},
		Templates:    Templates{FilePath: templatesFile},
		History:      History{MaxItems: historyMax},
		Workers:      Workers{SyncInterval: syncInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" when nothing is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
