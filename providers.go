package main

import (
	"sort"
	"strings"
)

const defaultProviderName = "myers"

var providerFactories = map[string]func() Provider{
	"myers":   NewMyersProvider,
	"difflib": NewDifflibProvider,
}

// LookupProvider returns the named provider, or nil when no such provider is
// available. Callers treat nil as "no diff capability" and show an empty result.
func LookupProvider(name string) Provider {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = defaultProviderName
	}
	factory, ok := providerFactories[name]
	if !ok {
		return nil
	}
	return factory()
}

// ProviderNames lists the registered provider names in sorted order
func ProviderNames() []string {
	names := make([]string, 0, len(providerFactories))
	for name := range providerFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
