package order

import (
	"context"
	"io"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xenking/kart-relations/internal/domain/payment"
)

const instrumentationName = "github.com/xenking/kart-relations/internal/domain/order"

// ErrUnknownFormat is returned for receipt formats other than text and json.
var ErrUnknownFormat = errors.New("unknown receipt format")

// Format selects how a receipt is rendered.
type Format string

const (
	// FormatText renders the line-oriented order report.
	FormatText Format = "text"
	// FormatJSON renders a single JSON object per receipt.
	FormatJSON Format = "json"
)

// ParseFormat normalizes a format name. An empty name yields FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return f, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
	}
}

// CheckoutRequest holds the input for checking out an order.
type CheckoutRequest struct {
	// Output receives the rendered receipt.
	Output io.Writer
	// Format of the receipt, FormatText when empty.
	Format Format
	// Payment charges the final total. Nil skips payment.
	Payment payment.Processor
	// PaymentOutput receives the payment confirmation. Defaults to Output.
	PaymentOutput io.Writer
}

// Service checks out orders: it prices them, renders a receipt and charges
// the final total.
type Service struct {
	lg     *zap.Logger
	tracer trace.Tracer

	processed  metric.Int64Counter
	finalTotal metric.Float64Histogram
}

// NewService creates an order Service reporting to the given logger and
// telemetry providers.
func NewService(lg *zap.Logger, tp trace.TracerProvider, mp metric.MeterProvider) (*Service, error) {
	meter := mp.Meter(instrumentationName)

	processed, err := meter.Int64Counter("kart.orders.processed",
		metric.WithDescription("Number of orders checked out"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create processed counter")
	}
	finalTotal, err := meter.Float64Histogram("kart.orders.final_total",
		metric.WithDescription("Final order amount after discount"),
		metric.WithUnit("USD"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create final total histogram")
	}

	return &Service{
		lg:         lg,
		tracer:     tp.Tracer(instrumentationName),
		processed:  processed,
		finalTotal: finalTotal,
	}, nil
}

// Checkout renders the receipt for o and pays its final total.
func (s *Service) Checkout(ctx context.Context, o *Order, req CheckoutRequest) (_ *Receipt, rerr error) {
	ctx, span := s.tracer.Start(ctx, "order.Checkout")
	defer func() {
		if rerr != nil {
			span.RecordError(rerr)
			span.SetStatus(codes.Error, rerr.Error())
		}
		span.End()
	}()

	format := req.Format
	if format == "" {
		format = FormatText
	}

	r := o.Receipt(uuid.New().String())
	if req.Payment != nil {
		r.Payment = req.Payment.Method()
	}
	span.SetAttributes(
		attribute.String("kart.receipt.id", r.ID),
		attribute.String("kart.account.role", r.Role.String()),
		attribute.Int("kart.order.items", len(r.Items)),
	)

	if err := writeReceipt(req.Output, format, r); err != nil {
		return nil, errors.Wrap(err, "write receipt")
	}

	if req.Payment != nil {
		out := req.PaymentOutput
		if out == nil {
			out = req.Output
		}
		if err := req.Payment.Pay(ctx, out, r.Totals.Final); err != nil {
			return nil, errors.Wrapf(err, "pay with %s", r.Payment)
		}
	}

	attrs := metric.WithAttributes(attribute.String("role", r.Role.String()))
	s.processed.Add(ctx, 1, attrs)
	s.finalTotal.Record(ctx, r.Totals.Final.InexactFloat64(), attrs)

	s.lg.Info("Order processed",
		zap.String("receipt_id", r.ID),
		zap.Stringer("role", r.Role),
		zap.Int("items", len(r.Items)),
		zap.Stringer("total", r.Totals.Total),
		zap.Stringer("discount", r.Totals.Discount),
		zap.Stringer("final_total", r.Totals.Final),
		zap.String("payment", string(r.Payment)),
	)

	return r, nil
}

func writeReceipt(w io.Writer, format Format, r *Receipt) error {
	switch format {
	case FormatText:
		return r.WriteText(w)
	case FormatJSON:
		data, err := r.MarshalJSON()
		if err != nil {
			return err
		}
		data = append(data, '\n')
		if _, err := w.Write(data); err != nil {
			return errors.Wrap(err, "write json")
		}
		return nil
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", string(format))
	}
}
