/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/accessorhooks/errors"
)

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

var (
	indexMaps = make(map[reflect.Type]map[string]string)
	mu        sync.RWMutex
)

// RegisterIndexMap associates type T with its index map. The map must define a
// PK template. Registering T again replaces the previous map.
func RegisterIndexMap[T any](idxMap map[string]string) error {
	if _, ok := idxMap["PK"]; !ok {
		return errors.NewValidationError("PK", "index map has no PK template")
	}

	copied := make(map[string]string, len(idxMap))
	for k, v := range idxMap {
		copied[k] = v
	}

	mu.Lock()
	defer mu.Unlock()
	indexMaps[reflect.TypeOf((*T)(nil)).Elem()] = copied
	return nil
}

// MustRegisterIndexMap is like RegisterIndexMap but panics on an invalid map.
func MustRegisterIndexMap[T any](idxMap map[string]string) {
	if err := RegisterIndexMap[T](idxMap); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
}

// GetIndexMap retrieves a copy of the index map for type T, if any.
func GetIndexMap[T any]() (map[string]string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := indexMaps[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	copied := make(map[string]string, len(m))
	for k, v := range m {
		copied[k] = v
	}
	return copied, true
}

// Macros returns the sorted, distinct field names referenced by template.
func Macros(template string) []string {
	seen := make(map[string]bool)
	for _, m := range macroPattern.FindAllStringSubmatch(template, -1) {
		seen[m[1]] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExpandMacros fills every template of indexMap with values from item. Macros
// naming a missing or non scalar attribute expand to the empty string.
func ExpandMacros(indexMap map[string]string, item map[string]types.AttributeValue) map[string]string {
	res := make(map[string]string, len(indexMap))
	for keyName, template := range indexMap {
		res[keyName] = macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			val, ok := item[strings.Trim(macro, "{}")]
			if !ok {
				return ""
			}
			return scalarString(val)
		})
	}
	return res
}

// ExpandKey replaces every macro of every template with key. It is used to
// address an item whose PK and SK templates both reference the same field.
func ExpandKey(indexMap map[string]string, key string) map[string]string {
	res := make(map[string]string, len(indexMap))
	for keyName, template := range indexMap {
		res[keyName] = macroPattern.ReplaceAllLiteralString(template, key)
	}
	return res
}

func scalarString(val types.AttributeValue) string {
	switch tv := val.(type) {
	case *types.AttributeValueMemberS:
		return tv.Value
	case *types.AttributeValueMemberN:
		return tv.Value
	case *types.AttributeValueMemberBOOL:
		return fmt.Sprintf("%v", tv.Value)
	default:
		// NULL, binary, sets, lists and maps have no key representation
		return ""
	}
}
