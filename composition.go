package gravix2

// compositionSchemes holds the symmetric composition coefficients γ₁…γ_s,
// keyed by SchemeName, to full printed precision: p2s1, p6s9 and p8s15
// are reproduced verbatim from the reference implementation's tables,
// p4s3 (triple jump) and p4s5 (Suzuki fractal) from their closed-form
// coefficients.
var compositionSchemes = map[SchemeName][]float64{
	SchemeP2S1: {
		1.0,
	},
	SchemeP4S3: {
		1.3512071919596578,
		-1.7024143839193155,
		1.3512071919596578,
	},
	SchemeP4S5: {
		0.4144907717943757,
		0.4144907717943757,
		-0.6579630871775028,
		0.4144907717943757,
		0.4144907717943757,
	},
	SchemeP6S9: {
		0.39216144400731413928,
		0.33259913678935943860,
		-0.70624617255763935981,
		0.082213596293550800230,
		0.79854399093482996340,
		0.082213596293550800230,
		-0.70624617255763935981,
		0.33259913678935943860,
		0.39216144400731413928,
	},
	SchemeP8S15: {
		0.74167036435061295345,
		-0.40910082580003159400,
		0.19075471029623837995,
		-0.57386247111608226666,
		0.29906418130365592384,
		0.33462491824529818378,
		0.31529309239676659663,
		-0.79688793935291635402,
		0.31529309239676659663,
		0.33462491824529818378,
		0.29906418130365592384,
		-0.57386247111608226666,
		0.19075471029623837995,
		-0.40910082580003159400,
		0.74167036435061295345,
	},
}

// composedStep advances qp by one composed step of size h following the
// symmetric composition recipe:
//
//	strang1(γ₁ h / 2)
//	for i = 1..s: strang2(γᵢ h); strang1((γᵢ+γ_{i+1}) h / 2)   // γ_{s+1}:=0
func composedStep(cfg Config, qp *QP, e *QP, h float64, planets *Planets) {
	gamma := cfg.gamma

	strang1(qp, e, gamma[0]*h/2)
	for i := range gamma {
		g2 := gamma[i]
		g1 := g2
		if i+1 < len(gamma) {
			g1 += gamma[i+1]
		}

		strang2(cfg, qp, e, g2*h, planets)
		strang1(qp, e, g1*h/2)
	}
}
