package cache

import (
	"sort"
	"sync"

	"github.com/Sagaustus/spyral-translation/internal/entity"
)

// LocaleCache keeps every locale keyed by id and by code.
type LocaleCache struct {
	byId   map[int]entity.Locale
	byCode map[string]entity.Locale
	mu     sync.RWMutex
}

// NewLocaleCache builds a cache seeded with locales.
func NewLocaleCache(locales []entity.Locale) *LocaleCache {
	c := &LocaleCache{}
	c.RefreshLocales(locales)
	return c
}

func (c *LocaleCache) GetLocaleById(id int) (*entity.Locale, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	l, ok := c.byId[id]
	if !ok {
		return nil, false
	}
	return &l, true
}

func (c *LocaleCache) GetLocaleByCode(code string) (*entity.Locale, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	l, ok := c.byCode[code]
	if !ok {
		return nil, false
	}
	return &l, true
}

// GetLocales returns a copy of every cached locale ordered by code.
func (c *LocaleCache) GetLocales() []entity.Locale {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ls := make([]entity.Locale, 0, len(c.byId))
	for _, l := range c.byId {
		ls = append(ls, l)
	}
	sort.Slice(ls, func(i, j int) bool { return ls[i].Code < ls[j].Code })
	return ls
}

// RefreshLocales replaces the cached set.
func (c *LocaleCache) RefreshLocales(locales []entity.Locale) {
	byId := make(map[int]entity.Locale, len(locales))
	byCode := make(map[string]entity.Locale, len(locales))
	for _, l := range locales {
		byId[l.Id] = l
		byCode[l.Code] = l
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.byId = byId
	c.byCode = byCode
}
