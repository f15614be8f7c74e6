package app

import (
	"context"
	"io"
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xenking/kart-relations/internal/domain/cart"
	"github.com/xenking/kart-relations/internal/domain/order"
)

// Run builds the configured account, cart and order, checks the order out
// and prints the receipt to stdout. It is the single wiring point for the
// application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	return run(ctx, lg, m.TracerProvider(), m.MeterProvider(), cfg, os.Stdout, os.Stderr)
}

func run(
	ctx context.Context,
	lg *zap.Logger,
	tp trace.TracerProvider,
	mp metric.MeterProvider,
	cfg *Config,
	stdout, stderr io.Writer,
) error {
	owner, err := cfg.NewAccount()
	if err != nil {
		return errors.Wrap(err, "create account")
	}
	policy, err := cfg.Policy()
	if err != nil {
		return errors.Wrap(err, "create discount policy")
	}
	processor, err := cfg.Processor()
	if err != nil {
		return errors.Wrap(err, "create payment processor")
	}
	format, err := cfg.ReceiptFormat()
	if err != nil {
		return errors.Wrap(err, "receipt format")
	}

	lg.Info("Initializing",
		zap.Stringer("role", owner.Role()),
		zap.String("username", owner.Username()),
		zap.Strings("items", cfg.Items),
	)

	c := cart.New(owner)
	o := order.New(owner, policy)
	for _, item := range cfg.Items {
		c.AddItem(item)
		o.AddItem(item)
	}
	lg.Info("Cart filled", zap.Int("items", c.Len()), zap.Stringer("total", c.Total()))

	svc, err := order.NewService(lg, tp, mp)
	if err != nil {
		return errors.Wrap(err, "create order service")
	}

	req := order.CheckoutRequest{
		Output:  stdout,
		Format:  format,
		Payment: processor,
	}
	if format == order.FormatJSON {
		// Keep stdout a valid JSON stream.
		req.PaymentOutput = stderr
	}
	if _, err := svc.Checkout(ctx, o, req); err != nil {
		return errors.Wrap(err, "checkout")
	}
	return nil
}
