package debate

// Axis catalogs for comparator conversations. Templates carry {{A}}
// (the side the user leans to) and {{B}} (the side the bot argues for)
// placeholders. The generic catalog is domain-agnostic; the food
// catalog replaces it when both pair terms match the food lexicon.

var genericAxes = map[Locale][]string{
	LocaleEN: {
		"In simplicity, {{B}} reduces friction; {{A}} adds extra steps.",
		"In consistency, {{B}} maintains clear expectations; {{A}} varies more.",
		"With {{B}} it's easier to get started; {{A}} demands initial practice.",
		"{{B}} prioritizes the essential; {{A}} scatters attention.",
		"{{B}} minimizes interruptions; {{A}} introduces micro-decisions.",
		"{{B}} favors coherent long-term decisions; {{A}} leads to ad hoc solutions.",
		"In terms of accessibility, {{B}} is more direct; {{A}} requires additional context.",
		"{{B}} offers immediate results; {{A}} demands initial investment.",
		"For daily use, {{B}} is more intuitive; {{A}} has a steep curve.",
		"{{B}} adapts better to changes; {{A}} maintains structural rigidity.",
	},
	LocaleES: {
		"En simplicidad, {{B}} reduce fricción; {{A}} añade pasos extra.",
		"En consistencia, {{B}} mantiene expectativas claras; {{A}} varía más.",
		"Con {{B}} es más fácil empezar; {{A}} exige práctica inicial.",
		"{{B}} prioriza lo esencial; {{A}} dispersa la atención.",
		"{{B}} minimiza interrupciones; {{A}} introduce microdecisiones.",
		"{{B}} favorece decisiones coherentes a largo plazo; {{A}} deriva en soluciones ad hoc.",
		"En términos de accesibilidad, {{B}} es más directo; {{A}} requiere contexto adicional.",
		"{{B}} ofrece resultados inmediatos; {{A}} demanda inversión inicial.",
		"Para uso cotidiano, {{B}} es más intuitivo; {{A}} tiene curva empinada.",
		"{{B}} se adapta mejor a cambios; {{A}} mantiene rigidez estructural.",
	},
}

var foodAxes = map[Locale][]string{
	LocaleEN: {
		"On base flavor, {{B}} keeps a cleaner profile; {{A}} leans on sweetness to compensate.",
		"In carbonation, {{B}} stays balanced to the last sip; {{A}} goes flat sooner.",
		"Aromatically, {{B}} comes through more distinct; {{A}} blurs into the background.",
		"On aftertaste, {{B}} finishes clean; {{A}} lingers heavier than it should.",
		"For pairing with food, {{B}} is more versatile; {{A}} clashes with more dishes.",
		"Over repeated sips, {{B}} holds its character; {{A}} fatigues the palate.",
		"In sweetness, {{B}} stays measured; {{A}} tips into excess.",
	},
	LocaleES: {
		"En sabor base, {{B}} mantiene un perfil más limpio; {{A}} se apoya en el dulzor para compensar.",
		"En carbonatación, {{B}} se mantiene equilibrado hasta el último sorbo; {{A}} pierde gas antes.",
		"En aroma, {{B}} se percibe más definido; {{A}} se difumina en el fondo.",
		"En postgusto, {{B}} termina limpio; {{A}} se queda más pesado de lo debido.",
		"Para acompañar comida, {{B}} ofrece más versatilidad; {{A}} choca con más platos.",
		"En una cata de sorbos repetidos, {{B}} conserva su carácter; {{A}} fatiga el paladar.",
		"En dulzor, {{B}} se mantiene mesurado; {{A}} cae en el exceso.",
	},
}

// Comparator phrasing pools. Anchor, analogy, question, refutation and
// closing variants, all parameterized by the pair terms.

var comparatorAnchors = map[Locale][]string{
	LocaleEN: {
		"I can accept that many see it that way; still, {{B}} deserves the stronger defense over {{A}}.",
		"It's worth weighing the real trade-offs: I'll make the case for {{B}} against {{A}}.",
		"If we test what happens in practice, {{B}} holds up better than {{A}}.",
	},
	LocaleES: {
		"Puedo aceptar que muchos lo vean así; aun así, {{B}} merece la defensa más fuerte frente a {{A}}.",
		"Vale la pena considerar los intercambios reales: defenderé a {{B}} frente a {{A}}.",
		"Si ponemos a prueba lo que ocurre en la práctica, {{B}} se sostiene mejor que {{A}}.",
	},
}

var comparatorAnalogies = map[Locale][]string{
	LocaleEN: {
		"For example, in everyday situations, these differences between {{A}} and {{B}} become evident.",
		"A concrete case: when choosing between {{A}} and {{B}}, context determines the better option.",
		"Consider how {{A}} and {{B}} function under pressure: strengths reveal themselves quickly.",
	},
	LocaleES: {
		"Por ejemplo, en situaciones cotidianas, estas diferencias entre {{A}} y {{B}} se vuelven evidentes.",
		"Un caso concreto: cuando se trata de elegir entre {{A}} y {{B}}, el contexto determina la mejor opción.",
		"Considera cómo {{A}} y {{B}} funcionan bajo presión: las fortalezas se revelan rápidamente.",
	},
}

var comparatorQuestions = map[Locale][]string{
	LocaleEN: {
		"But ask yourself: day to day, wouldn't {{B}} serve you better than {{A}}?",
		"Don't you think the case for {{A}} rests more on habit than on merit?",
		"Isn't it telling that {{B}} keeps winning wherever the comparison is made fairly?",
	},
	LocaleES: {
		"¿Pero acaso, en el día a día, no te serviría mejor {{B}} que {{A}}?",
		"¿No te parece que la defensa de {{A}} se apoya más en la costumbre que en el mérito?",
		"¿No es revelador que {{B}} siga ganando donde la comparación se hace de forma justa?",
	},
}

var comparatorClosings = map[Locale][]string{
	LocaleEN: {
		"That's why {{B}} shouldn't be dismissed so quickly.",
		"In real scenarios, this difference shows.",
		"That's the reason why {{B}} turns out more sensible.",
	},
	LocaleES: {
		"Por eso {{B}} no debería descartarse tan rápido.",
		"En escenarios reales, esta diferencia se nota.",
		"Ahí está la razón por la que {{B}} resulta más sensato.",
	},
}

// comparatorPreferenceRefutation takes (user side, bot side).
var comparatorPreferenceRefutation = map[Locale]string{
	LocaleEN: "Your core claim is that %s beats %s; I maintain the opposite for the reasons above.",
	LocaleES: "Tu idea central es que %s supera a %s; sostengo lo contrario por las razones anteriores.",
}

// comparatorClaimRefutation takes (quoted claim).
var comparatorClaimRefutation = map[Locale]string{
	LocaleEN: "You say %q, but this overlooks the practical differences.",
	LocaleES: "Dices %q, pero esto pasa por alto las diferencias prácticas.",
}

// foodLexicon lists food and beverage terms in both languages. A pair
// routes to the food axis catalog only when both sides match.
var foodLexicon = map[string]bool{
	"coffee": true, "tea": true, "coke": true, "pepsi": true, "cola": true,
	"coca cola": true, "coca-cola": true, "beer": true, "wine": true,
	"juice": true, "soda": true, "water": true, "milk": true, "chocolate": true,
	"pizza": true, "pasta": true, "burger": true, "sushi": true, "taco": true,
	"rice": true, "bread": true, "cheese": true, "apple": true, "orange": true,
	"café": true, "cafe": true, "té": true, "cerveza": true, "vino": true,
	"jugo": true, "zumo": true, "refresco": true, "agua": true, "leche": true,
	"pan": true, "queso": true, "manzana": true, "naranja": true, "arroz": true,
}

// axisCatalog picks the axis pool for a pair: food axes when both
// sides are food terms, the generic catalog otherwise.
func axisCatalog(locale Locale, pair *Pair) []string {
	if foodLexicon[normalize(pair.SideA)] && foodLexicon[normalize(pair.SideB)] {
		if axes, ok := foodAxes[locale]; ok {
			return axes
		}
		return foodAxes[LocaleEN]
	}
	if axes, ok := genericAxes[locale]; ok {
		return axes
	}
	return genericAxes[LocaleEN]
}
