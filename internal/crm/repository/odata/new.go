package odata

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"crm-admin-gateway/internal/crm"
	"crm-admin-gateway/pkg/log"
)

// cachedList is one cached page of list results.
type cachedList struct {
	records []crm.Record
	count   int
}

// implRepository is the OData-backed implementation of repository.Repository.
type implRepository struct {
	client *Client
	cache  *expirable.LRU[string, cachedList]
	l      log.Logger
}

// New creates the backend repository. List responses are cached in an
// expiring LRU keyed by entity set + query string; any mutation purges it.
func New(client *Client, l log.Logger, cacheSize int, listTTL time.Duration) *implRepository {
	if cacheSize <= 0 {
		cacheSize = 512
	}
	return &implRepository{
		client: client,
		cache:  expirable.NewLRU[string, cachedList](cacheSize, nil, listTTL),
		l:      l,
	}
}
