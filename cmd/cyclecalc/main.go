package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/terraincognita07/cyclecalc/client"
	"github.com/terraincognita07/cyclecalc/internal/config"
	"github.com/terraincognita07/cyclecalc/models"
)

var errUsage = errors.New("usage: cyclecalc decode [file|-] | cyclecalc fetch -last-period yyyy-MM-dd [-cycle-length n] [-period-length n] [-cycles n] [-env-file path] [-v]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		stop()
		log.Fatalf("cyclecalc: %v", err)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "decode":
		return runDecode(args[1:], stdin, stdout)
	case "fetch":
		return runFetch(ctx, args[1:], stdout)
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

func runDecode(args []string, stdin io.Reader, stdout io.Writer) error {
	source := "-"
	if len(args) > 0 {
		source = args[0]
	}

	var (
		data []byte
		err  error
	)
	if source == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", source, err)
	}

	response, err := decodeDocument(data)
	if err != nil {
		return err
	}
	return writeResponse(stdout, response)
}

func runFetch(ctx context.Context, args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("fetch", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var request client.Request
	var envFile string
	var verbose bool
	flags.StringVar(&request.LastPeriod, "last-period", "", "first day of the last period (yyyy-MM-dd)")
	flags.IntVar(&request.CycleLength, "cycle-length", 0, "average cycle length in days")
	flags.IntVar(&request.PeriodLength, "period-length", 0, "average period length in days")
	flags.IntVar(&request.Cycles, "cycles", 0, "number of cycles to calculate")
	flags.StringVar(&envFile, "env-file", "", "env file to load before reading configuration")
	flags.BoolVar(&verbose, "v", false, "log each API call to stderr")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%v: %w", err, errUsage)
	}

	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	options := []client.Option{client.WithBaseURL(cfg.BaseURL), client.WithTimeout(cfg.Timeout)}
	if verbose {
		options = append(options, client.WithLogger(log.New(os.Stderr, "cyclecalc: ", log.LstdFlags)))
	}

	response, err := client.New(cfg.APIKey, options...).Execute(ctx, request)
	if err != nil {
		return err
	}
	return writeResponse(stdout, response)
}

func loadConfig(envFile string) (config.Config, error) {
	if envFile != "" {
		return config.LoadFrom(envFile)
	}
	return config.Load()
}

// decodeDocument accepts either a bare calculator document or one wrapped in the API envelope.
func decodeDocument(data []byte) (*models.CycleCalculatorResponse, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err == nil {
		_, hasStatus := members["status"]
		_, hasData := members["data"]
		if hasStatus && hasData {
			envelope, err := models.DecodeEnvelope(data)
			if err != nil {
				return nil, err
			}
			if !envelope.OK() {
				return nil, fmt.Errorf("document carries an api error: %s", envelope.Error)
			}
			if envelope.Data == nil {
				return nil, client.ErrEmptyResponse
			}
			return envelope.Data, nil
		}
	}
	return models.Decode(data)
}

func writeResponse(stdout io.Writer, response *models.CycleCalculatorResponse) error {
	encoded, err := models.EncodeIndent(response, "", "  ")
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	encoded = append(encoded, '\n')
	_, err = stdout.Write(encoded)
	return err
}
