package censor

import (
	"reflect"
	"strings"
	"sync"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the field annotation tag with sentinel
	sentinel.Tag(TagKey)
}

// fieldDescriptor describes how to walk and render a single struct field.
type fieldDescriptor struct {
	index      []int      // reflect.Value.FieldByIndex access path
	name       string     // declared Go name, used by the text encoder
	jsonName   string     // key emitted by the JSON encoder
	omitJSON   bool       // json:"-"
	omitEmpty  bool       // json:",omitempty"
	annotation Annotation // parsed `censor` tag
}

var (
	descriptors   = make(map[reflect.Type][]fieldDescriptor)
	descriptorsMu sync.RWMutex
)

// describe returns the cached field table for struct type rt, building it
// on first use. Tables depend only on the type, so they are shared by all
// processors.
func describe(rt reflect.Type) []fieldDescriptor {
	// Fast path: read-lock cache check
	descriptorsMu.RLock()
	if cached, ok := descriptors[rt]; ok {
		descriptorsMu.RUnlock()
		return cached
	}
	descriptorsMu.RUnlock()

	// Slow path: build and cache with write-lock
	descriptorsMu.Lock()
	defer descriptorsMu.Unlock()

	// Double-check pattern
	if cached, ok := descriptors[rt]; ok {
		return cached
	}

	fields := buildDescriptors(rt)
	descriptors[rt] = fields
	return fields
}

// Prepare scans T with sentinel and builds its field table ahead of the
// first Process call. Nested struct types in the same module are scanned
// too. It is optional; tables are otherwise built lazily.
func Prepare[T any]() {
	rt := reflect.TypeFor[T]()
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return
	}

	// Sentinel scans T and *T only; deeper pointers are extracted instead.
	sentinel.Tag(TagKey)
	_, _ = sentinel.TryScan[T]()
	describe(rt)
}

// ResetDescriptors clears the field table cache.
// This is primarily useful for test isolation.
func ResetDescriptors() {
	descriptorsMu.Lock()
	defer descriptorsMu.Unlock()
	descriptors = make(map[reflect.Type][]fieldDescriptor)
}

// buildDescriptors creates the field table for rt from its metadata.
func buildDescriptors(rt reflect.Type) []fieldDescriptor {
	return descriptorsFrom(structMetadata(rt))
}

// descriptorsFrom converts sentinel field metadata into descriptors. Names,
// indexes and tags are taken from meta as is.
func descriptorsFrom(meta sentinel.Metadata) []fieldDescriptor {
	fields := make([]fieldDescriptor, 0, len(meta.Fields))

	for _, field := range meta.Fields {
		fd := fieldDescriptor{
			index:      field.Index,
			name:       field.Name,
			jsonName:   field.Name,
			annotation: ParseAnnotation(field.Tags[TagKey]),
		}
		applyJSONTag(&fd, field.Tags["json"])

		fields = append(fields, fd)
	}

	return fields
}

// structMetadata returns the metadata sentinel holds for rt, or extracts
// it in the same shape when sentinel has not scanned rt.
func structMetadata(rt reflect.Type) sentinel.Metadata {
	if meta, ok := scannedMetadata(rt); ok {
		return meta
	}
	return extractMetadata(rt)
}

// scannedMetadata looks rt up in sentinel's cache. Sentinel keys types by
// bare name, so an entry is only trusted when it describes rt field for
// field: same package, same exported fields, same engine tags.
func scannedMetadata(rt reflect.Type) (sentinel.Metadata, bool) {
	if rt.Name() == "" {
		return sentinel.Metadata{}, false
	}

	meta, ok := sentinel.Lookup(rt.Name())
	if !ok || meta.TypeName != rt.Name() || meta.PackageName != rt.PkgPath() {
		return sentinel.Metadata{}, false
	}
	if len(meta.Fields) != exportedFields(rt) {
		return sentinel.Metadata{}, false
	}

	for _, field := range meta.Fields {
		sf, ok := fieldByIndex(rt, field.Index)
		if !ok || sf.Name != field.Name || sf.Type != field.ReflectType {
			return sentinel.Metadata{}, false
		}
		for _, key := range engineTags {
			if sf.Tag.Get(key) != field.Tags[key] {
				return sentinel.Metadata{}, false
			}
		}
	}

	return meta, true
}

// engineTags are the struct tags the descriptors are built from.
var engineTags = []string{TagKey, "json"}

// extractMetadata builds metadata for rt the way sentinel would, keeping
// only the tags the engine reads.
func extractMetadata(rt reflect.Type) sentinel.Metadata {
	meta := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		tags := make(map[string]string, len(engineTags))
		for _, key := range engineTags {
			if val := sf.Tag.Get(key); val != "" {
				tags[key] = val
			}
		}

		meta.Fields = append(meta.Fields, sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        tags,
		})
	}

	return meta
}

// applyJSONTag reads a `json` tag value into fd.
func applyJSONTag(fd *fieldDescriptor, val string) {
	if val == "" {
		return
	}
	if val == "-" {
		fd.omitJSON = true
		return
	}

	name, opts, _ := strings.Cut(val, ",")
	if name != "" {
		fd.jsonName = name
	}
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == "omitempty" {
			fd.omitEmpty = true
		}
	}
}

// fieldByIndex resolves a top-level field without panicking on stale
// metadata. Promoted fields are walked through their embedding field, so
// deeper index paths are rejected.
func fieldByIndex(rt reflect.Type, index []int) (reflect.StructField, bool) {
	if len(index) != 1 || index[0] < 0 || index[0] >= rt.NumField() {
		return reflect.StructField{}, false
	}
	return rt.Field(index[0]), true
}

func exportedFields(rt reflect.Type) int {
	n := 0
	for i := 0; i < rt.NumField(); i++ {
		if rt.Field(i).IsExported() {
			n++
		}
	}
	return n
}
