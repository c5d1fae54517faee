package fortnite

import (
	"net/url"
	"strings"

	"fortbot/fortniteapi"
)

// Args are the string options of one invocation, keyed by option name
type Args map[string]string

// MissingParams lists required params that are absent or blank
func (d Definition) MissingParams(args Args) []string {
	var missing []string
	for _, p := range d.Params {
		if p.Required && strings.TrimSpace(args[p.Name]) == "" {
			missing = append(missing, p.Name)
		}
	}
	return missing
}

// BuildRequest substitutes args into the endpoint template. Values are
// escaped by the query encoder and not validated beyond presence.
func (d Definition) BuildRequest(args Args) fortniteapi.Request {
	req := fortniteapi.Request{Path: d.Path}
	for _, p := range d.Params {
		value, ok := args[p.Name]
		if !ok {
			continue
		}
		if req.Query == nil {
			req.Query = url.Values{}
		}
		req.Query.Set(p.Name, value)
	}
	return req
}
