package cli

import (
	"github.com/spf13/pflag"

	"honnef.co/go/svgpath"
	"honnef.co/go/svgpath/internal/config"
)

// separatorValue is a pflag.Value for svgpath.ListSeparator.
type separatorValue struct {
	sep *svgpath.ListSeparator
}

var _ pflag.Value = separatorValue{}

func (v separatorValue) String() string {
	if v.sep == nil {
		return ""
	}
	return v.sep.String()
}

func (v separatorValue) Set(s string) error {
	return v.sep.UnmarshalText([]byte(s))
}

func (separatorValue) Type() string {
	return "separator"
}

// writeFlags are the flags that override config.Write. Commands register the
// groups that affect their output.
type writeFlags struct {
	removeLeadingZero bool
	compact           bool
	joinArcFlags      bool
	dedupe            bool
	implicitLineTo    bool
	simplify          bool
	separator         svgpath.ListSeparator
}

func (f *writeFlags) registerNumber(fs *pflag.FlagSet) {
	fs.BoolVar(&f.removeLeadingZero, "remove-leading-zero", false, "write 0.5 as .5")
}

func (f *writeFlags) registerPath(fs *pflag.FlagSet) {
	fs.BoolVar(&f.compact, "compact", false, "omit separators wherever the data still parses the same")
	fs.BoolVar(&f.joinArcFlags, "join-arc-flags", false, "don't separate the flags of arcs")
	fs.BoolVar(&f.dedupe, "dedupe", false, "omit repeated command letters")
	fs.BoolVar(&f.implicitLineTo, "implicit-lineto", false, "omit the letters of lines that follow a move")
}

func (f *writeFlags) registerList(fs *pflag.FlagSet) {
	fs.Var(separatorValue{&f.separator}, "separator", "list `separator`: space, comma or comma-space")
}

func (f *writeFlags) registerTransform(fs *pflag.FlagSet) {
	fs.BoolVar(&f.simplify, "simplify", false, "write translate, scale or rotate instead of matrix where possible")
}

// apply overrides the settings in w whose flags were set.
func (f *writeFlags) apply(fs *pflag.FlagSet, w config.Write) config.Write {
	set := func(name string, dst *bool, v bool) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	set("remove-leading-zero", &w.RemoveLeadingZero, f.removeLeadingZero)
	set("compact", &w.Compact, f.compact)
	set("join-arc-flags", &w.JoinArcFlags, f.joinArcFlags)
	set("dedupe", &w.Dedupe, f.dedupe)
	set("implicit-lineto", &w.ImplicitLineTo, f.implicitLineTo)
	set("simplify", &w.SimplifyTransforms, f.simplify)
	if fs.Changed("separator") {
		w.Separator = f.separator
	}
	return w
}

func (a *app) writeOptions(fs *pflag.FlagSet, f *writeFlags) svgpath.WriteOptions {
	return f.apply(fs, a.cfg.Write).Options()
}
