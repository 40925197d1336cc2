package payslip

import (
	"context"
	"crypto/rand"
	"fmt"

	"cadebeck-hr/internal/payroll"
	paysliperrors "cadebeck-hr/internal/payslip/errors"
)

const (
	numberAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	numberSuffixLen   = 6
	maxNumberAttempts = 5
)

// FormatNumber renders PSL-{staff}-{MMYYYY}-{suffix}.
func FormatNumber(staffNumber string, period payroll.Period, suffix string) string {
	return fmt.Sprintf("PSL-%s-%s-%s", staffNumber, period.Compact(), suffix)
}

func randomSuffix() (string, error) {
	buf := make([]byte, numberSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	// 256 % 36 bias is negligible for a collision-checked suffix
	for i, b := range buf {
		buf[i] = numberAlphabet[int(b)%len(numberAlphabet)]
	}
	return string(buf), nil
}

// uniqueNumber draws suffixes until one is unused, giving up after
// maxNumberAttempts.
func uniqueNumber(ctx context.Context, repo Repository, staffNumber string, period payroll.Period) (string, error) {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		suffix, err := randomSuffix()
		if err != nil {
			return "", err
		}
		number := FormatNumber(staffNumber, period, suffix)
		exists, err := repo.NumberExists(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
	return "", paysliperrors.ErrNumberExhausted
}
