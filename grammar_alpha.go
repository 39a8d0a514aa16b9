package descript

func alphaRule(prefix string, k Kind) rule {
	return prefixed(prefix, flag, func(v Flag) Directive { return AlphaFlag{Key: k, Value: v} })
}

var alphaRules = rules(
	one(alphaRule("seriko.paint_transparent_region_black,", KindSerikoPaintTransparentRegionBlack)),
	one(alphaRule("seriko.use_self_alpha,", KindSerikoUseSelfAlpha)),
)
