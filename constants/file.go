package constants

import "strings"

// UploadKind identifies which processing path an upload takes.
type UploadKind string

const (
	KindRaster      UploadKind = "RASTER"
	KindPointCloud  UploadKind = "POINT_CLOUD"
	KindVectorLayer UploadKind = "VECTOR_LAYER"
	KindRawData     UploadKind = "RAW_DATA"
)

// UploadKinds holds the allowed kind strings for schema and payload validation.
var UploadKinds = []string{
	string(KindRaster),
	string(KindPointCloud),
	string(KindVectorLayer),
	string(KindRawData),
}

// Allowed file extensions per upload kind (lowercase, without '.').
var (
	RasterExtensions = map[string]struct{}{
		"tif":  {},
		"tiff": {},
	}
	PointCloudExtensions = map[string]struct{}{
		"las": {},
		"laz": {},
	}
	VectorExtensions = map[string]struct{}{
		"geojson": {},
		"json":    {},
		"shp":     {},
		"gpkg":    {},
		"zip":     {},
	}
	RawDataExtensions = map[string]struct{}{
		"zip": {},
	}
)

// COPCSuffix marks a point cloud that is already cloud optimized; such
// uploads are copied through without conversion.
const COPCSuffix = ".copc.laz"

// InfoSuffix is the sidecar extension the upload server writes next to
// each staged file once the upload finishes.
const InfoSuffix = ".info"

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsCOPC reports whether the filename already carries the cloud-optimized
// point cloud suffix.
func IsCOPC(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), COPCSuffix)
}
