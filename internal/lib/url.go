package lib

import "net/url"

// SanitizeURL keeps only the scheme and host, node providers carry api keys in the
// userinfo or the path
func SanitizeURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "<invalid url>"
	}
	return u.Scheme + "://" + u.Host
}
