package tax

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type rawBracket struct {
	Min   string `mapstructure:"min"`
	Max   string `mapstructure:"max"`
	Rate  string `mapstructure:"rate"`
	Fixed string `mapstructure:"fixed"`
}

type rawBand struct {
	Min    string `mapstructure:"min"`
	Max    string `mapstructure:"max"`
	Amount string `mapstructure:"amount"`
}

type rawTables struct {
	Version         string       `mapstructure:"version"`
	PersonalRelief  string       `mapstructure:"personal_relief"`
	InsuranceRelief string       `mapstructure:"insurance_relief"`
	PAYE            []rawBracket `mapstructure:"paye"`
	NHIF            []rawBand    `mapstructure:"nhif"`
	NSSF            struct {
		Rate       string `mapstructure:"rate"`
		LowerLimit string `mapstructure:"lower_limit"`
		UpperLimit string `mapstructure:"upper_limit"`
	} `mapstructure:"nssf"`
}

// LoadTables reads a versioned table file (yaml, json or toml).
// An empty path returns DefaultTables.
func LoadTables(path string) (Tables, error) {
	if path == "" {
		return DefaultTables(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Tables{}, fmt.Errorf("read tax tables %s: %w", path, err)
	}

	var raw rawTables
	if err := v.Unmarshal(&raw); err != nil {
		return Tables{}, fmt.Errorf("decode tax tables %s: %w", path, err)
	}

	tables, err := raw.toTables()
	if err != nil {
		return Tables{}, fmt.Errorf("tax tables %s: %w", path, err)
	}
	if err := tables.Validate(); err != nil {
		return Tables{}, err
	}
	return tables, nil
}

func (r rawTables) toTables() (Tables, error) {
	p := &parser{}
	t := Tables{
		Version:         r.Version,
		PersonalRelief:  p.amount("personal_relief", r.PersonalRelief),
		InsuranceRelief: p.amount("insurance_relief", r.InsuranceRelief),
		NSSF: NSSFRule{
			Rate:       p.amount("nssf.rate", r.NSSF.Rate),
			LowerLimit: p.amount("nssf.lower_limit", r.NSSF.LowerLimit),
			UpperLimit: p.amount("nssf.upper_limit", r.NSSF.UpperLimit),
		},
	}

	for i, b := range r.PAYE {
		field := fmt.Sprintf("paye[%d]", i)
		t.PAYEBrackets = append(t.PAYEBrackets, Bracket{
			Min:   p.amount(field+".min", b.Min),
			Max:   p.optional(field+".max", b.Max),
			Rate:  p.amount(field+".rate", b.Rate),
			Fixed: p.amount(field+".fixed", b.Fixed),
		})
	}
	for i, b := range r.NHIF {
		field := fmt.Sprintf("nhif[%d]", i)
		t.NHIFBands = append(t.NHIFBands, Band{
			Min:    p.amount(field+".min", b.Min),
			Max:    p.optional(field+".max", b.Max),
			Amount: p.amount(field+".amount", b.Amount),
		})
	}

	return t, p.err
}

// parser keeps the first decoding error so conversions read as plain assignments.
type parser struct {
	err error
}

func (p *parser) amount(field, s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(s)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("%s: %w", field, err)
	}
	return v
}

func (p *parser) optional(field, s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	v := p.amount(field, s)
	return &v
}
