package siteconfig

import (
	"errors"
	"net/url"
	"strings"
)

func newSiteURLFromString(s string) (*url.URL, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("must be set")
	}
	if strings.TrimSpace(s) != s {
		return nil, errors.New("must not have leading or trailing space")
	}

	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}

	switch {
	case !u.IsAbs():
		return nil, errors.New("must be an absolute URL with a scheme")
	case u.Scheme != "http" && u.Scheme != "https":
		return nil, errors.New("scheme must be http or https")
	case u.Opaque != "":
		return nil, errors.New("must be an absolute URL with a host")
	case u.Host == "" || u.Hostname() == "":
		return nil, errors.New("must have a host")
	case u.User != nil:
		return nil, errors.New("must not contain user info")
	case u.RawQuery != "" || u.ForceQuery:
		return nil, errors.New("must not have a query")
	case u.Fragment != "":
		return nil, errors.New("must not have a fragment")
	}

	return u, nil
}
