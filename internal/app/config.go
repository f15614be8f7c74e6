package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/kart-relations/internal/domain/account"
	"github.com/xenking/kart-relations/internal/domain/discount"
	"github.com/xenking/kart-relations/internal/domain/order"
	"github.com/xenking/kart-relations/internal/domain/payment"
)

// Config holds the complete application configuration, loadable from
// environment variables (KART_ prefix), flags, or YAML config files.
type Config struct {
	Format   string   `default:"text" usage:"Receipt format: text or json"`
	Payment  string   `default:"" usage:"Payment method: credit_card, paypal, or empty to skip payment"`
	Items    []string `default:"Tablet,Headphones" usage:"Item labels added to the cart and the order"`
	Account  AccountConfig
	Discount DiscountConfig
}

// AccountConfig describes the account the order is placed for.
type AccountConfig struct {
	Role       string `default:"customer" usage:"Account role: admin or customer"`
	Username   string `default:"JaneDoe" usage:"Account user name"`
	Email      string `default:"jane@example.com" usage:"Account email"`
	AdminLevel int    `default:"1" usage:"Admin level, used for admin accounts" flag:"admin-level"`
	CustomerID int    `default:"456" usage:"Customer number, used for customer accounts" flag:"customer-id"`
}

// DiscountConfig controls the order discount policy.
type DiscountConfig struct {
	Threshold string `default:"50" usage:"Order total that must be exceeded to get a discount"`
	Rate      string `default:"0.10" usage:"Share of the total taken off above the threshold"`
}

// LoadConfig loads configuration from environment variables, flags and YAML
// config files, and validates it.
func LoadConfig() (*Config, error) {
	return loadConfig(aconfig.Config{
		EnvPrefix: "KART",
		Files:     []string{"config.yaml", "/etc/kart/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
}

func loadConfig(acfg aconfig.Config) (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, acfg)
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := c.NewAccount(); err != nil {
		return err
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	if _, err := c.Processor(); err != nil {
		return err
	}
	if _, err := c.ReceiptFormat(); err != nil {
		return err
	}
	return nil
}

// NewAccount builds the configured account.
func (c *Config) NewAccount() (*account.Account, error) {
	role, err := account.ParseRole(c.Account.Role)
	if err != nil {
		return nil, err
	}
	a := c.Account
	if role == account.RoleAdmin {
		return account.NewAdmin(a.Username, a.Email, a.AdminLevel), nil
	}
	return account.NewCustomer(a.Username, a.Email, a.CustomerID), nil
}

// Policy builds the configured discount policy.
func (c *Config) Policy() (discount.ThresholdPolicy, error) {
	threshold, err := decimal.NewFromString(c.Discount.Threshold)
	if err != nil {
		return discount.ThresholdPolicy{}, errors.Wrap(err, "parse discount threshold")
	}
	rate, err := decimal.NewFromString(c.Discount.Rate)
	if err != nil {
		return discount.ThresholdPolicy{}, errors.Wrap(err, "parse discount rate")
	}
	return discount.NewThresholdPolicy(threshold, rate)
}

// Processor returns the configured payment processor, nil when payment is skipped.
func (c *Config) Processor() (payment.Processor, error) {
	m, err := payment.ParseMethod(c.Payment)
	if err != nil {
		return nil, err
	}
	return payment.New(m)
}

// ReceiptFormat returns the configured receipt format.
func (c *Config) ReceiptFormat() (order.Format, error) {
	return order.ParseFormat(c.Format)
}
