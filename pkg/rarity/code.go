package rarity

import (
	"fmt"
	"time"

	"github.com/matotam-io/matotam-core/pkg/detrand"
)

// Info describes a derived rarity code.
//
// Two independent derivations exist and are exposed as separate
// constructors: FromTimestamp (epoch-relative time code, the current scheme)
// and FromPair (legacy hash of the sender/recipient pair). The Code format
// is identical either way.
type Info struct {
	// Code is the compact "Y{2-digit}D{3-digit}" code.
	Code string

	// ProjectYear and DayInYear are set by FromTimestamp only.
	ProjectYear int
	DayInYear   int

	// PairHash is set by FromPair only.
	PairHash uint32
}

// ZeroCode is the pinned code for any mint predating the project epoch.
const ZeroCode = "Y00D000"

func formatCode(yy, ddd int) string {
	return fmt.Sprintf("Y%02dD%03d", yy, ddd)
}

// FromTimestamp derives the time-based code: the day offset of the mint from
// the project epoch, split into a year and a day index.
//
// Day counting starts at 1 on the epoch day itself. The year rolls over
// every 365 days, deliberately ignoring leap years: the progression stays a
// pure integer division of elapsed days, so day 365 after the epoch is
// Y01D000. Anything strictly before the epoch is pinned to Y00D000.
func FromTimestamp(mint time.Time, epoch time.Time) Info {
	mintDay := toUTCMidnight(mint)
	epochDay := toUTCMidnight(epoch)

	if mintDay.Before(epochDay) {
		return Info{Code: ZeroCode}
	}

	diffDays := int(mintDay.Sub(epochDay)/(24*time.Hour)) + 1

	projectYear := diffDays / 365
	dayInYear := diffDays % 365

	return Info{
		Code:        formatCode(projectYear%100, dayInYear%1000),
		ProjectYear: projectYear,
		DayInYear:   dayInYear,
	}
}

// FromPair derives the legacy pair-based code: a 32-bit hash of the literal
// "sender|recipient" concatenation (order matters here, unlike the ornament
// pair key) mapped into the Y/D digits. It does not depend on time.
func FromPair(senderAddr, recipientAddr string) Info {
	h := detrand.Hash32(senderAddr + "|" + recipientAddr)

	yy := int(h % 100)
	ddd := int(h/100) % 1000

	return Info{
		Code:     formatCode(yy, ddd),
		PairHash: h,
	}
}

func toUTCMidnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
