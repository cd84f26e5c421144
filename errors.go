package clientlib

import "errors"

// ErrMissingCategories is logged when a render is requested without any
// usable category. Include logs it rather than returning it.
var ErrMissingCategories = errors.New("'categories' option might be missing from the client library include; " +
	"provide a CSV list or an array of categories to include")
