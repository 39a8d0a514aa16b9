package descript

var balloonPosition = keyword[BalloonPosition](balloonPositionNames)

func balloonOffset(axis Axis) func(Scope, Position) Directive {
	return func(s Scope, v Position) Directive {
		return BalloonOffset{Scope: s, Axis: axis, Value: v}
	}
}

func balloonAlignment(s Scope, p BalloonPosition) Directive {
	return BalloonAlignment{Scope: s, Position: p}
}

func balloonDontMove(s Scope, v Flag) Directive {
	return BalloonDontMove{Scope: s, Value: v}
}

var balloonRules = rules(
	named(".balloon.offsetx,", signed, balloonOffset(AxisX)),
	named(".balloon.offsety,", signed, balloonOffset(AxisY)),
	named(".balloon.alignment,", balloonPosition, balloonAlignment),
	scoped(".balloon.dontmove,", flagOrTrue, balloonDontMove),
)
