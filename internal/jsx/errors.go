package jsx

import "errors"

// ErrParse indicates the source text is not valid JSX/TSX. It is the only
// error either operation returns; "tag not found" and "attribute absent"
// are ordinary results, not errors.
var ErrParse = errors.New("parse error")
