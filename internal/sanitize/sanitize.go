// Package sanitize cleans BibTeX field text for TOML front matter.
//
// Cleaning is an ordered list of literal substitutions applied in a
// single reduction pass. Rule order is significant: later rules depend
// on artifacts left by earlier ones, so the tables below must not be
// reordered.
package sanitize

import "strings"

// rule is one literal substitution.
type rule struct{ old, new string }

func apply(s string, rules []rule) string {
	for _, r := range rules {
		s = strings.ReplaceAll(s, r.old, r.new)
	}
	return s
}

// baseRules clean any free-text field: drop backslashes, escape
// embedded double quotes, strip braces and flatten whitespace control
// characters. The final rule reinstates the "{1-x}" brace group that
// the brace strip removes from chemical formulas.
var baseRules = []rule{
	{`\`, ""},
	{`"`, `\"`},
	{"{", ""},
	{"}", ""},
	{"\t", " "},
	{"\n", " "},
	{"\r", ""},
	{"1-x", "{1-x}"},
}

// abstractPreRules run before the base pass, while macro delimiters
// are still intact. They map emphasis and product-name macros plus a
// fixed set of math symbols to text or HTML entities.
var abstractPreRules = []rule{
	{`{\em ab initio}`, "*ab initio*"},
	{`{\em Ab initio}`, "*Ab initio*"},
	{`{\em all}`, "*all*"},
	{`{\em effective}`, "*effective*"},
	{`\texttt{BerkeleyGW}`, "<TT>BerkeleyGW</TT>"},
	{`\texttt{PARATEC}`, "<TT>PARATEC</TT>"},
	{`\texttt{PARSEC}`, "<TT>PARSEC</TT>"},
	{`\texttt{Quantum ESPRESSO}`, "<TT>Quantum ESPRESSO</TT>"},
	{`\texttt{SIESTA}`, "<TT>SIESTA</TT>"},
	{`\texttt{Octopus}`, "<TT>Octopus</TT>"},
	{`$\lesssim$`, "&le;"},
	{`$\propto$`, "&prop;"},
	{`$\times$`, "&times;"},
	{`$\sim$`, "&sim;"},
	{`$\rightarrow$`, "&rarr;"},
	{`$\tau_`, "&tau;$_"},
	{`$\pi$`, "&pi;"},
	{`$\mu$`, "&micro;"},
	{`$\rho$`, "&rho;"},
	{`$\theta$`, "&theta;"},
	{`$\alpha$`, "&alpha;"},
	{`$\beta$`, "&beta;"},
	{`$\Gamma$`, "&Gamma;"},
	{`$\gamma$`, "&gamma;"},
	{`$\Sigma$`, "&Sigma;"},
	{`$\Sigma(\omega)$`, "&Sigma;(&omega;)"},
	{`$^{\circ}$`, "&deg;"},
}

// abstractPostRules run after the base pass and repair specific
// numeric subscript/superscript groups that the brace strip corrupts.
var abstractPostRules = []rule{
	{"12-x", "{12-x}"},
	{"13-x", "{13-x}"},
	{`$_13$`, `$_{13}$`},
	{`$_0.5$`, `$_{0.5}$`},
	{`$_11.5$`, `$_{11.5}$`},
	{`$_11$`, `$_{11}$`},
	{`$_12.75$`, `$_{12.75}$`},
	{`$_0.25$`, `$_{0.25}$`},
	{`D$_Zn$`, `D$_{Zn}$`},
	{`D$_Te$`, `D$_{Te}$`},
	{`D$_Si$`, `D$_{Si}$`},
	{`D$_Ge$`, `D$_{Ge}$`},
	{`$^-1$`, `$^{-1}$`},
	{`$^-2$`, `$^{-2}$`},
	{`$^-4$`, `$^{-4}$`},
	{`$^-5$`, `$^{-5}$`},
	{`$^1+$`, `$^{1+}$`},
	{`$^2+$`, `$^{2+}$`},
	{`$^+2$`, `$^{+2}$`},
	{`$^3+$`, `$^{3+}$`},
	{`$^+3$`, `$^{+3}$`},
	{`0$_60$`, `0$_{60}$`},
	{`$_1g$`, `$_{1g}$`},
	{`$_2g`, `$_{2g}`},
	{`_2g$`, `_{2g}$`},
}

// Clean applies the base pass. It is total: text with no matching
// patterns passes through unchanged.
func Clean(s string) string {
	return apply(s, baseRules)
}

// CleanAbstract applies the extended pass used for abstracts: macro
// substitution, then the base pass, then subscript repair.
func CleanAbstract(s string) string {
	s = apply(s, abstractPreRules)
	s = apply(s, baseRules)
	return apply(s, abstractPostRules)
}
