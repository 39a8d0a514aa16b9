package descript

import "strings"

func textRule(prefix string, k Kind) rule {
	return prefixed(prefix, text, func(v string) Directive { return Text{Key: k, Value: v} })
}

func markerRule(literal string, k Kind) rule {
	return func(in string) (Directive, string, bool) {
		rest, ok := strings.CutPrefix(in, literal)
		if !ok {
			return nil, in, false
		}
		return Marker{Key: k}, rest, true
	}
}

func charsetRule(prefix string, k Kind) rule {
	return prefixed(prefix, charsetValue, func(c Charset) Directive { return CharsetDecl{Key: k, Charset: c} })
}

func entityName(s Scope, v string) Directive { return EntityName{Scope: s, Value: v} }

var identityRules = rules(
	one(charsetRule(charsetPrefix, KindCharset)),
	one(textRule("name,", KindName)),
	one(textRule("id,", KindID)),
	one(markerRule("type,shell", KindType)),
	one(textRule("craftman,", KindCraftman)),
	one(textRule("craftmanw,", KindCraftmanW)),
	one(textRule("craftmanurl,", KindCraftmanURL)),
	one(textRule("homeurl,", KindHomeURL)),
	one(textRule("readme,", KindReadme)),
	one(charsetRule("readme.charset,", KindReadmeCharset)),
	one(markerRule("menu,hidden", KindMenuHidden)),
	one(inScope(Sakura, ".name,", text, entityName)),
	one(textRule("sakura.name2,", KindSakuraName2)),
	one(inScope(Kero, ".name,", text, entityName)),
	one(inChar(".name,", text, entityName)),
)
