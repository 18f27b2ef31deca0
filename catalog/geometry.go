package catalog

import (
	"fmt"
	"reflect"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
)

// GeometryExtensionName is the Arrow extension identifier for geometry
// columns. Uses "geoarrow.wkb" for compatibility with GeoArrow and the
// DuckDB spatial extension.
const GeometryExtensionName = "geoarrow.wkb"

// GeometryExtensionType implements an Arrow extension type for geospatial
// columns. Geometries are stored as WKB (Well-Known Binary) in Binary
// columns, so geometry columns can participate in grouping like any other
// column.
type GeometryExtensionType struct {
	arrow.ExtensionBase
}

// NewGeometryExtensionType creates a new geometry extension type.
func NewGeometryExtensionType() *GeometryExtensionType {
	return &GeometryExtensionType{
		ExtensionBase: arrow.ExtensionBase{
			Storage: arrow.BinaryTypes.Binary,
		},
	}
}

// ArrayType returns the Go type for geometry arrays.
func (g *GeometryExtensionType) ArrayType() reflect.Type {
	return reflect.TypeOf((*array.Binary)(nil))
}

// ExtensionName returns the extension type identifier.
func (g *GeometryExtensionType) ExtensionName() string {
	return GeometryExtensionName
}

// String returns a string representation of the type.
func (g *GeometryExtensionType) String() string {
	return "extension<" + GeometryExtensionName + ">"
}

// Serialize returns the extension metadata (empty for basic WKB).
func (g *GeometryExtensionType) Serialize() string {
	return ""
}

// Deserialize creates a geometry extension type from metadata.
func (g *GeometryExtensionType) Deserialize(storageType arrow.DataType, data string) (arrow.ExtensionType, error) {
	if !arrow.TypeEqual(storageType, arrow.BinaryTypes.Binary) &&
		!arrow.TypeEqual(storageType, arrow.BinaryTypes.LargeBinary) {
		return nil, fmt.Errorf("invalid storage type for geometry: %s (expected Binary or LargeBinary)", storageType)
	}
	return &GeometryExtensionType{
		ExtensionBase: arrow.ExtensionBase{Storage: storageType},
	}, nil
}

// ExtensionEquals checks equality with another extension type.
func (g *GeometryExtensionType) ExtensionEquals(other arrow.ExtensionType) bool {
	otherGeom, ok := other.(*GeometryExtensionType)
	if !ok {
		return false
	}
	return arrow.TypeEqual(g.StorageType(), otherGeom.StorageType())
}

// MarshalGeometry encodes a geometry value as WKB bytes.
func MarshalGeometry(geom orb.Geometry) ([]byte, error) {
	return wkb.Marshal(geom)
}

// UnmarshalGeometry decodes WKB bytes into a geometry value.
func UnmarshalGeometry(data []byte) (orb.Geometry, error) {
	return wkb.Unmarshal(data)
}
