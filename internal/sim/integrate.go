package sim

// ClampDt bounds a raw frame delta to [0, maxDt].
func ClampDt(dtRaw, maxDt float64) float64 {
	if dtRaw <= 0 {
		return 0
	}
	if dtRaw > maxDt {
		return maxDt
	}
	return dtRaw
}

// Integrate advances the body by one step: gravity first, then position.
func Integrate(b *Body, gravity, dtRaw, maxDt float64) {
	dt := ClampDt(dtRaw, maxDt)
	if dt == 0 {
		return
	}

	b.Velocity[1] -= gravity * dt
	b.Position[0] += b.Velocity[0] * dt
	b.Position[1] += b.Velocity[1] * dt
}
