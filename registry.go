// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

package bmpm

import (
	"io"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/singleflight"
)

// RegistryOptions configures a Registry.
type RegistryOptions struct {
	// Logger receives load diagnostics. Nil discards them.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

// Registry loads rule tables, language lists and guessers from a file system
// and caches them for its lifetime.
//
// Every resource is loaded at most once, also under concurrent first use;
// load errors are cached as well. Cached values are immutable and shared.
type Registry struct {
	// fsys holds "<name>.txt" resources.
	fsys fs.FS
	// logger receives load diagnostics.
	logger *slog.Logger
	// cache stores loaded resources or load errors by resource name.
	cache map[string]cachedResource
	// group collapses concurrent loads of one resource.
	group singleflight.Group

	// mu guards cache access.
	mu sync.RWMutex
}

// cachedResource stores one loaded resource or its load error.
type cachedResource struct {
	// value is *RuleTable, LanguageSet or *LanguageGuesser.
	value any
	// err stores load error for deterministic repeated calls.
	err error
}

// NewRegistry creates a registry reading resources from fsys.
func NewRegistry(fsys fs.FS, opts RegistryOptions) *Registry {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Registry{
		fsys:   fsys,
		logger: logger,
		cache:  make(map[string]cachedResource),
	}
}

// Rules returns the rule table of a name type, rule type and language,
// LanguageCommon or LanguageAny.
func (r *Registry) Rules(nt NameType, rt RuleType, lang string) (*RuleTable, error) {
	if !nt.valid() {
		return nil, errors.Wrapf(ErrUnknownNameType, "name type %d", nt)
	}

	if !rt.valid() {
		return nil, errors.Wrapf(ErrInvalidRuleType, "rule type %d", rt)
	}

	name := RulesResourceName(nt, rt, lang)
	return loadCached(r, name, func() (*RuleTable, error) {
		table, err := LoadRuleTable(r.fsys, name)
		if err != nil {
			return nil, err
		}

		r.logger.Debug("loaded rule table",
			slog.String("name", name),
			slog.Int("rules", table.Len()),
			slog.Int("buckets", table.Buckets()))

		return table, nil
	})
}

// RulesFor returns the language-specific table for langs: the table of its
// only language for singletons and the LanguageAny table otherwise.
func (r *Registry) RulesFor(nt NameType, rt RuleType, langs LanguageSet) (*RuleTable, error) {
	return r.Rules(nt, rt, langs.tableLanguage())
}

// Languages returns the configured languages of a name type.
func (r *Registry) Languages(nt NameType) (LanguageSet, error) {
	if !nt.valid() {
		return NoLanguages, errors.Wrapf(ErrUnknownNameType, "name type %d", nt)
	}

	name := LanguagesResourceName(nt)
	return loadCached(r, name, func() (LanguageSet, error) {
		langs, err := LoadLanguages(r.fsys, nt)
		if err != nil {
			return NoLanguages, err
		}

		r.logger.Debug("loaded language list",
			slog.String("name", name),
			slog.String("languages", langs.String()))

		return langs, nil
	})
}

// Guesser returns the language guesser of a name type.
func (r *Registry) Guesser(nt NameType) (*LanguageGuesser, error) {
	if !nt.valid() {
		return nil, errors.Wrapf(ErrUnknownNameType, "name type %d", nt)
	}

	name := LanguageRulesResourceName(nt)
	return loadCached(r, name, func() (*LanguageGuesser, error) {
		guesser, err := LoadLanguageGuesser(r.fsys, nt)
		if err != nil {
			return nil, err
		}

		r.logger.Debug("loaded language rules",
			slog.String("name", name),
			slog.Int("rules", guesser.Rules()),
			slog.String("languages", guesser.Languages().String()))

		return guesser, nil
	})
}

// loadCached returns cached resource by name or loads it once.
func loadCached[T any](r *Registry, name string, load func() (T, error)) (T, error) {
	if entry, ok := r.lookup(name); ok {
		return unwrapCachedResource[T](entry)
	}

	value, err, _ := r.group.Do(name, func() (any, error) {
		if entry, ok := r.lookup(name); ok {
			return entry.value, entry.err
		}

		loaded, loadErr := load()
		if loadErr != nil {
			r.logger.Warn("load resource failed",
				slog.String("name", name),
				slog.String("error", loadErr.Error()))
		}

		r.mu.Lock()
		r.cache[name] = cachedResource{value: loaded, err: loadErr}
		r.mu.Unlock()

		return loaded, loadErr
	})

	return unwrapCachedResource[T](cachedResource{value: value, err: err})
}

// lookup returns cached resource entry by name.
func (r *Registry) lookup(name string) (cachedResource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.cache[name]
	return entry, ok
}

// unwrapCachedResource unwraps cached resource entry.
func unwrapCachedResource[T any](entry cachedResource) (T, error) {
	var zero T
	if entry.err != nil {
		return zero, entry.err
	}

	value, ok := entry.value.(T)
	if !ok {
		return zero, errors.AssertionFailedf("cached resource has type %T", entry.value)
	}

	return value, nil
}
