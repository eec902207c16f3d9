package metaclient

import (
	"context"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
)

// maxPages limita quantas páginas uma listagem pode seguir
const maxPages = 50

var ErrTooManyPages = errors.New("paging.next did not end")

type page[T any] struct {
	Data   []T               `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

// followPages segue paging.next a partir da primeira página já lida.
// A URL de next já vem com access_token e demais parâmetros.
func followPages[T any](ctx context.Context, c *MetaClient, items []T, next string) ([]T, error) {
	for fetched := 1; next != ""; fetched++ {
		if fetched >= maxPages {
			return nil, &TransportError{Op: "paging", Err: ErrTooManyPages}
		}

		body, err := c.Call(ctx, next)
		if err != nil {
			return nil, err
		}

		var current page[T]
		if err := json.Unmarshal(body, &current); err != nil {
			return nil, &TransportError{Op: "decode " + endpointLabel(next), Err: err}
		}

		items = append(items, current.Data...)
		next = current.Paging.Next
	}

	return items, nil
}
