package coffee

import (
	"fmt"
	"net/url"
	"strings"
)

// PlaceholderImage is used whenever no usable image URL can be resolved.
const PlaceholderImage = "https://placehold.co/800x500?text=Coffee"

// imageKeys lists the field names tried, in order, across catalog APIs.
var imageKeys = []string{
	"image", "imageUrl", "imageURL",
	"img", "boxArt", "boxArtUrl", "boxArtURL",
	"cover", "coverUrl", "coverURL",
	"thumbnail", "thumb", "poster",
}

// ResolveImage returns an https URL for the record's image, or
// PlaceholderImage. It never fails.
func ResolveImage(raw RawRecord) string {
	var v interface{}
	for _, key := range imageKeys {
		if candidate, ok := raw[key]; ok && candidate != nil {
			v = candidate
			break
		}
	}

	switch val := v.(type) {
	case map[string]interface{}:
		switch {
		case truthy(val["url"]):
			v = val["url"]
		case truthy(val["src"]):
			v = val["src"]
		default:
			v = nil
		}
	case []interface{}:
		v = nil
		if len(val) > 0 && truthy(val[0]) {
			v = val[0]
		}
	}

	s, ok := v.(string)
	if !ok {
		return PlaceholderImage
	}
	return CleanImageURL(s)
}

// CleanImageURL trims, upgrades to https and percent-encodes s, falling back
// to PlaceholderImage when the result is not an http(s) URL.
func CleanImageURL(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "//") {
		s = "https:" + s
	}
	if strings.HasPrefix(s, "http://") {
		s = "https://" + s[len("http://"):]
	}
	if s == "" {
		return PlaceholderImage
	}
	s = encodeURI(s)
	if !isHTTPURL(s) {
		return PlaceholderImage
	}
	return s
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}

// uriSafe are the bytes encodeURI leaves untouched besides ASCII letters and digits.
const uriSafe = ";,/?:@&=+$#-_.!~*'()"

// encodeURI percent-encodes every byte outside the URI-safe set, including
// '%' itself.
func encodeURI(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') ||
			strings.IndexByte(uriSafe, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

func truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case float64:
		return val != 0
	default:
		return true
	}
}
