package metric

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-logfmt/logfmt"
)

type metadata map[string]string

// Name identifies a sampled distribution, such as binomial[n=50 p=0.3].  Parameters are stored as
// metadata and marshalled with logfmt in sorted key order.  Metadata with an empty value is an
// annotation and is written as @key after the parameters.
type Name struct {
	name string
	md   metadata
}

// String marshals the name to a string representation, such as gamma[b=2 k=0.5 @rejection]
func (n Name) String() string {
	md, err := MarshalText(n.md)
	if err != nil {
		md = []byte{}
	}
	return n.name + string(md)
}

// Distribution returns the name without parameters
func (n Name) Distribution() string {
	return n.name
}

// NewName returns a new name with the associated metadata
func NewName(name string, md map[string]string) Name {
	if md == nil {
		md = make(map[string]string)
	}
	return Name{name: name, md: md}
}

// ParamName builds a name from alternating parameter keys and numeric values, for example
// ParamName("binomial", "p", 0.3, "n", 50.0).  A trailing key without a value is ignored.
func ParamName(name string, kv ...interface{}) Name {
	md := make(map[string]string)
	for i := 0; i+1 < len(kv); i += 2 {
		k := fmt.Sprint(kv[i])
		switch v := kv[i+1].(type) {
		case float64:
			md[k] = strconv.FormatFloat(v, 'g', -1, 64)
		case int:
			md[k] = strconv.Itoa(v)
		default:
			md[k] = fmt.Sprint(v)
		}
	}
	return NewName(name, md)
}

// AddAnnotation adds additional annotations
func (n Name) AddAnnotation(ann ...string) {
	for _, a := range ann {
		n.md[a] = ""
	}
}

// MarshalText will return the metadata encoded as a modified logfmt representation.  Metadata opens with a [
// then is followed by (key, value) pairs k=v in sorted key order, then by annotations starting with @ in
// sorted order.  Close with a ].  Example: [k=3 b=2 @rejection]
func MarshalText(m metadata) ([]byte, error) {
	if len(m) == 0 {
		return []byte{}, nil
	}
	keys := make([]string, 0, len(m))
	ann := make([]string, 0, len(m))
	for k, v := range m {
		switch v {
		case "":
			ann = append(ann, fmt.Sprintf("@%s", k))
		default:
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	sort.Strings(ann)

	var b bytes.Buffer
	b.WriteString("[")
	e := logfmt.NewEncoder(&b)
	for _, k := range keys {
		if err := e.EncodeKeyval(k, m[k]); err != nil {
			return nil, fmt.Errorf("failed to encode %s=%s: %v", k, m[k], err)
		}
	}
	if len(keys) > 0 && len(ann) > 0 {
		b.WriteString(" ")
	}
	b.WriteString(strings.Join(ann, " "))
	b.WriteString("]")
	return b.Bytes(), nil
}
