package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"payform/internal/form"
	"payform/internal/gateway"
	"payform/internal/session"
	"payform/internal/ui"
)

type config struct {
	gatewayURL string
	timeout    time.Duration
	env        string
}

// NewLogger creates a zap console logger with colored levels.
func NewLogger() *zap.SugaredLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(os.Stdout),
		zapcore.InfoLevel,
	)
	return zap.New(core).Sugar()
}

func loadConfig() config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	cfg := config{
		gatewayURL: os.Getenv("GATEWAY_URL"),
		env:        os.Getenv("ENV"),
		timeout:    gateway.DefaultTimeout,
	}
	if cfg.gatewayURL == "" {
		cfg.gatewayURL = "http://127.0.0.1:5000"
	}
	if val, exists := os.LookupEnv("HTTP_TIMEOUT_SECONDS"); exists {
		if parsed, err := strconv.Atoi(val); err == nil {
			cfg.timeout = time.Duration(parsed) * time.Second
		} else {
			log.Println("Invalid HTTP_TIMEOUT_SECONDS, defaulting to", gateway.DefaultTimeout)
		}
	}
	return cfg
}

func main() {
	var (
		methodFlag = flag.String("method", "upi", "payment method: upi | card | netbanking | wallet")
		upiID      = flag.String("upi", "", "UPI id, e.g. alice@bank")
		name       = flag.String("name", "", "cardholder name")
		cardNumber = flag.String("number", "", "card number")
		expiry     = flag.String("expiry", "", "card expiry, digits or MM/YY")
		cvv        = flag.String("cvv", "", "card CVV")
		bank       = flag.String("bank", "", "net-banking bank code")
		wallet     = flag.String("wallet", "", "wallet name")
		amount     = flag.String("amount", "", "payment amount")
	)
	flag.Parse()

	cfg := loadConfig()
	logger := NewLogger()
	defer logger.Sync()

	method, err := form.ParseMethod(*methodFlag)
	if err != nil {
		logger.Fatal(err)
	}

	if *amount != "" {
		amt, err := form.ParseAmount(*amount)
		if err != nil {
			logger.Fatalw("invalid amount", "error", err)
		}
		logger.Infow("amount accepted", "amount", amt)
	}

	client := gateway.NewClient(cfg.gatewayURL, cfg.timeout, logger)
	projector := ui.NewProjector(ui.Config{})
	sess := session.New(method, client, projector, logger)

	for id, val := range map[form.FieldID]string{
		form.FieldUPIID:          *upiID,
		form.FieldCardholderName: *name,
		form.FieldCardNumber:     *cardNumber,
		form.FieldExpiryDate:     *expiry,
		form.FieldCVV:            *cvv,
		form.FieldBank:           *bank,
		form.FieldWallet:         *wallet,
	} {
		if val != "" {
			canonical := sess.SetField(id, val)
			logger.Infow("field set", "field", id, "value", canonical)
		}
	}

	res, err := sess.Submit(context.Background())
	if errors.Is(err, session.ErrValidationFailed) {
		snap := projector.Snapshot()
		for _, id := range method.Fields() {
			if fs, ok := snap.Fields[id]; ok && !fs.Valid {
				fmt.Printf("%s: %s\n", id, fs.Message)
			}
		}
		os.Exit(1)
	}
	if err != nil {
		logger.Fatal(err)
	}

	switch res.Status {
	case gateway.StatusSuccess:
		fmt.Printf("✓ %s (ID: %s)\n", res.Message, res.TransactionID)
	case gateway.StatusRejected:
		fmt.Printf("✗ %s\n", res.Message)
		for _, fe := range res.FieldErrors {
			fmt.Printf("  - %s\n", fe)
		}
		os.Exit(1)
	default:
		fmt.Printf("✗ %s\n", res.Message)
		os.Exit(1)
	}
}
