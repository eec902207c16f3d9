package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange é um intervalo inclusivo de datas de calendário (meia-noite UTC)
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Days retorna a quantidade de dias do intervalo, incluindo as pontas
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

const DefaultTimezoneName = "UTC (default)"

// AccountTimezone é o fuso da conta de anúncios usado para calcular "hoje"
type AccountTimezone struct {
	OffsetHours float64
	Name        string
	Resolved    bool
}

func DefaultTimezone() AccountTimezone {
	return AccountTimezone{
		OffsetHours: 0,
		Name:        DefaultTimezoneName,
		Resolved:    false,
	}
}

// Today retorna a data de calendário corrente no fuso da conta
func (tz AccountTimezone) Today(now time.Time) time.Time {
	shifted := now.UTC().Add(time.Duration(tz.OffsetHours * float64(time.Hour)))
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, time.UTC)
}

// DailySpend é o gasto da conta em um dia do intervalo
type DailySpend struct {
	Date  time.Time
	Spend decimal.Decimal
}
