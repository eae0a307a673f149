package server

import (
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cepharum/dnsd/internal/dns/common/log"
	"github.com/cepharum/dnsd/internal/dns/domain"
)

// zoneIndex backs the server's zone lookup for question names (find). A
// bloom filter gives a cheap negative answer for each candidate suffix that
// is not a registered zone name, and an LRU, consulted before the walk,
// caches every walk result (matches and misses alike), so a server with
// many zones doesn't re-walk labels for every query against the same
// popular name.
type zoneIndex struct {
	mu     sync.RWMutex
	zones  map[string]domain.Zone
	filter *bloom.BloomFilter
	lookup *lru.Cache[string, string] // qname -> matched zone name, "" for none
	logger log.Logger
}

const zoneLookupCacheSize = 4096

func newZoneIndex() *zoneIndex {
	return newZoneIndexWithLogger(log.NewNoopLogger())
}

func newZoneIndexWithLogger(logger log.Logger) *zoneIndex {
	lookup, _ := lru.New[string, string](zoneLookupCacheSize)
	return &zoneIndex{
		zones:  make(map[string]domain.Zone),
		filter: bloom.NewWithEstimates(1024, 0.01),
		lookup: lookup,
		logger: logger,
	}
}

// put registers or replaces a zone and invalidates cached lookups, since a
// newly registered zone can change the answer for names already cached as
// unmatched.
func (z *zoneIndex) put(zone domain.Zone) {
	z.mu.Lock()
	defer z.mu.Unlock()
	z.zones[zone.Name] = zone
	z.filter.AddString(zone.Name)
	z.lookup.Purge()
}

// find walks qname from the full name toward the root, stripping one
// leftmost label per step, and returns the first registered zone matched.
func (z *zoneIndex) find(qname string) (domain.Zone, bool) {
	z.mu.RLock()
	defer z.mu.RUnlock()

	if cached, ok := z.lookup.Get(qname); ok {
		if cached == "" {
			return domain.Zone{}, false
		}
		zone, ok := z.zones[cached]
		return zone, ok
	}

	trimmed := strings.TrimSuffix(qname, ".")
	name := trimmed
	for name != "" {
		if z.filter.TestString(name) {
			if zone, ok := z.zones[name]; ok {
				z.lookup.Add(qname, name)
				if name != trimmed {
					z.logger.Debug(map[string]any{
						"qname": qname,
						"zone":  name,
					}, "query matched zone via sub-label walk")
				}
				return zone, true
			}
		}
		i := strings.Index(name, ".")
		if i < 0 {
			break
		}
		name = name[i+1:]
	}
	z.lookup.Add(qname, "")
	return domain.Zone{}, false
}
