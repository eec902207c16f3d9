package reporting

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

const DefaultWindowDays = 30

// RequestedRange são as datas do chamador já convertidas, antes da checagem contra "hoje".
// Default indica que algum dos limites não foi informado.
type RequestedRange struct {
	Start   time.Time
	End     time.Time
	Default bool
}

// ParseRequestedRange valida formato e ordem das datas. Não depende do fuso da conta,
// por isso roda antes de qualquer chamada remota.
func ParseRequestedRange(rawSince, rawUntil string) (RequestedRange, error) {
	var requested RequestedRange

	start, err := parseBound("since", rawSince)
	if err != nil {
		return requested, err
	}

	end, err := parseBound("until", rawUntil)
	if err != nil {
		return requested, err
	}

	if start == nil || end == nil {
		requested.Default = true
		return requested, nil
	}

	if start.After(*end) {
		return requested, &ValidationError{
			Param:  "range",
			Value:  fmt.Sprintf("%s..%s", rawSince, rawUntil),
			Reason: "since must not be after until",
		}
	}

	requested.Start = *start
	requested.End = *end
	return requested, nil
}

func parseBound(param, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	date, err := utils.ParseDisplayDate(raw)
	if err != nil {
		reason := err.Error()
		var parseErr *utils.DateParseError
		if errors.As(err, &parseErr) {
			reason = parseErr.Reason
		}
		return nil, &ValidationError{Param: param, Value: raw, Reason: reason}
	}

	return &date, nil
}

// Resolve aplica a janela padrão e os limites relativos a today.
// maxLookbackDays <= 0 desativa o limite de histórico.
func (r RequestedRange) Resolve(today time.Time, maxLookbackDays int) (*domain.DateRange, error) {
	today = utils.CalendarDate(today)

	if r.Default {
		return &domain.DateRange{
			Start: today.AddDate(0, 0, -(DefaultWindowDays - 1)),
			End:   today,
		}, nil
	}

	if maxLookbackDays > 0 {
		earliest := today.AddDate(0, 0, -maxLookbackDays)
		if r.Start.Before(earliest) {
			return nil, &ValidationError{
				Param:  "since",
				Value:  utils.FormatDisplayDate(r.Start),
				Reason: fmt.Sprintf("must not be earlier than %s (%d days of history)", utils.FormatDisplayDate(earliest), maxLookbackDays),
			}
		}
	}

	if r.Start.After(today) {
		return nil, &ValidationError{
			Param:  "since",
			Value:  utils.FormatDisplayDate(r.Start),
			Reason: "must not be in the future",
		}
	}

	return &domain.DateRange{Start: r.Start, End: r.End}, nil
}

// ResolveDateRange converte os parâmetros do chamador no intervalo efetivo do relatório
func ResolveDateRange(rawSince, rawUntil string, today time.Time, maxLookbackDays int) (*domain.DateRange, error) {
	requested, err := ParseRequestedRange(rawSince, rawUntil)
	if err != nil {
		return nil, err
	}

	return requested.Resolve(today, maxLookbackDays)
}
