package slot

// Visitor is the exhaustive, closed dispatch target for a populated slot
// value, per spec.md §4.C: "the visitor is a polymorphic function over the
// variants {string, list-of-string, double, date, enum, map, extension}.
// Implementations must dispatch on value type without string-based
// branching." Each method receives the slot's declared name so a single
// Visitor implementation can still special-case individual slots when
// needed (e.g. the TSV writer choosing column order).
type Visitor interface {
	VisitString(name, v string)
	VisitList(name string, v []string)
	VisitEnum(name, v string)
	VisitDouble(name string, v float64)
	VisitDate(name string, v Date)
	VisitMap(name string, v map[string]string)
	// VisitExtension handles both ExtensionDefListType and
	// ExtensionValueMapType slots; kind distinguishes the two so a single
	// method can still dispatch without a type switch on ext's dynamic type.
	VisitExtension(name string, kind ValueType, ext any)
}

// dispatch routes val to the appropriate Visitor method by Kind. This is
// the one and only type switch over ValueType in the package: every other
// consumer goes through the Visitor interface instead of branching on Kind
// itself, per the package doc's reflection-free dispatch design.
func dispatch(name string, val Value, v Visitor) {
	switch val.Kind {
	case StringType:
		v.VisitString(name, val.Str)
	case ListType:
		v.VisitList(name, val.List)
	case EnumType:
		v.VisitEnum(name, val.Str)
	case DoubleType:
		v.VisitDouble(name, val.D)
	case DateType:
		v.VisitDate(name, val.Date)
	case MapType:
		v.VisitMap(name, val.M)
	case ExtensionDefListType, ExtensionValueMapType:
		v.VisitExtension(name, val.Kind, val.Ext)
	}
}

// VisitorFuncs adapts a set of closures to the [Visitor] interface, for
// callers that only care about one or two value kinds. Unset fields are
// treated as no-ops.
type VisitorFuncs struct {
	String    func(name, v string)
	List      func(name string, v []string)
	Enum      func(name, v string)
	Double    func(name string, v float64)
	DateFn    func(name string, v Date)
	Map       func(name string, v map[string]string)
	Extension func(name string, kind ValueType, ext any)
}

func (f VisitorFuncs) VisitString(name, v string) {
	if f.String != nil {
		f.String(name, v)
	}
}

func (f VisitorFuncs) VisitList(name string, v []string) {
	if f.List != nil {
		f.List(name, v)
	}
}

func (f VisitorFuncs) VisitEnum(name, v string) {
	if f.Enum != nil {
		f.Enum(name, v)
	}
}

func (f VisitorFuncs) VisitDouble(name string, v float64) {
	if f.Double != nil {
		f.Double(name, v)
	}
}

func (f VisitorFuncs) VisitDate(name string, v Date) {
	if f.DateFn != nil {
		f.DateFn(name, v)
	}
}

func (f VisitorFuncs) VisitMap(name string, v map[string]string) {
	if f.Map != nil {
		f.Map(name, v)
	}
}

func (f VisitorFuncs) VisitExtension(name string, kind ValueType, ext any) {
	if f.Extension != nil {
		f.Extension(name, kind, ext)
	}
}
