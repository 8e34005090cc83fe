package debate

// Content banks per locale. These are fixed tables loaded once at init
// and treated as immutable: every phrase the composer emits comes from
// here, selected by turn-counter rotation.

type topicContent struct {
	keywords   []string
	arguments  []string
	analogies  []string
	principles []string
	questions  []string
	examples   []string
}

type contentBank struct {
	// anchors restate the bot's position, keyed by stance.
	anchors map[Stance][]string
	// argumentTemplates take (argument, reasoning).
	argumentTemplates []string
	// analogyTemplates take (analogy, principle).
	analogyTemplates []string
	// questionTemplates take (question).
	questionTemplates []string
	// refutationTemplates take (claim).
	refutationTemplates []string
	// topicSwitch takes (locked topic name, new topic name).
	topicSwitch string
	reasoning   []string
	closings    []string
	// structural pools for the general (unconventional topic) mode.
	openings        []string
	bodies          []string
	generalClosings []string
	// claim extraction support.
	fillers      []string
	fallbackClaim string
	exampleCues  []string
	topicNames   map[Topic]string
}

var banks = map[Locale]*contentBank{
	LocaleEN: {
		anchors: map[Stance][]string{
			StanceSupporting: {
				"I firmly believe that %s is fundamentally beneficial and necessary.",
				"I maintain that %s represents a crucial advancement for society.",
				"In my view, %s offers indispensable benefits that we cannot ignore.",
			},
			StanceOpposing: {
				"I maintain that %s presents significant concerns that cannot be ignored.",
				"I believe %s raises serious issues that require careful consideration.",
				"In my assessment, %s poses challenges that outweigh potential benefits.",
			},
		},
		argumentTemplates: []string{
			"First, consider that %s. This is crucial because %s.",
			"Moreover, %s. The evidence clearly shows %s.",
			"Additionally, %s. We cannot ignore that %s.",
			"Furthermore, %s. It's evident that %s.",
			"Most importantly, %s. This demonstrates %s.",
			"It's important to note that %s. Research indicates %s.",
		},
		analogyTemplates: []string{
			"Think of it like %s - both share the fundamental principle of %s.",
			"Consider the analogy of %s: just as in that case, %s applies here.",
			"It's similar to %s in that both involve %s.",
			"Like %s, this situation demonstrates %s.",
		},
		questionTemplates: []string{
			"But ask yourself: %s?",
			"Don't you think %s?",
			"Isn't it true that %s?",
		},
		refutationTemplates: []string{
			"You say %q, but this overlooks the broader context.",
			"You say %q, yet this perspective misses key considerations.",
			"You say %q, though this fails to account for important factors.",
		},
		topicSwitch: "Let's stay focused on %s; we can open a new thread for %s.",
		reasoning: []string{
			"the evidence strongly supports this approach",
			"research confirms this perspective",
			"data indicates this viewpoint",
			"studies demonstrate this position",
			"analysis validates this stance",
			"evidence substantiates this view",
		},
		closings: []string{
			"This approach offers the most sustainable long-term solution.",
			"These considerations should guide our decision-making process.",
			"The evidence clearly supports this perspective.",
			"This framework provides the most viable path forward.",
			"These principles ensure the most effective outcomes.",
			"This strategy delivers the most balanced results.",
		},
		openings: []string{
			"I see this differently.",
			"Let me push back on that.",
			"That's one way to look at it, but not mine.",
			"I'd challenge that reading.",
		},
		bodies: []string{
			"Much of this comes down to personal taste rather than settled fact",
			"Reasonable people weigh these things very differently",
			"What seems obvious here depends heavily on one's starting assumptions",
			"The appeal of this view fades once you examine the alternatives",
		},
		generalClosings: []string{
			"So I'd resist treating this as settled.",
			"That's why I remain unconvinced.",
			"On balance, the opposite reading holds up better.",
			"I'd keep the question open rather than concede it.",
		},
		fillers: []string{
			"i think", "i believe", "it seems", "in my opinion",
			"according to", "for me",
		},
		fallbackClaim: "your point",
		exampleCues: []string{
			"example", "examples", "for example", "give me an example",
		},
		topicNames: map[Topic]string{
			TopicClimate:    "climate change",
			TopicTechnology: "technology",
			TopicEducation:  "education",
		},
	},
	LocaleES: {
		anchors: map[Stance][]string{
			StanceSupporting: {
				"Creo firmemente que %s es fundamentalmente beneficioso y necesario.",
				"Sostengo que %s representa un avance crucial para la sociedad.",
				"En mi opinión, %s ofrece beneficios indispensables que no podemos ignorar.",
			},
			StanceOpposing: {
				"Mantengo que %s presenta preocupaciones significativas que no se pueden ignorar.",
				"Creo que %s plantea problemas serios que requieren consideración cuidadosa.",
				"En mi evaluación, %s plantea desafíos que superan los beneficios potenciales.",
			},
		},
		argumentTemplates: []string{
			"Primero, consideremos que %s. Esto es crucial porque %s.",
			"Además, %s. La evidencia muestra claramente que %s.",
			"Adicionalmente, %s. No podemos ignorar que %s.",
			"Por otra parte, %s. Es evidente que %s.",
			"Más importante aún, %s. Esto demuestra que %s.",
			"Es importante señalar que %s. La investigación indica que %s.",
		},
		analogyTemplates: []string{
			"Piénsalo como %s: ambos comparten el principio fundamental de %s.",
			"Considera la analogía de %s: tal como en ese caso, %s se aplica aquí.",
			"Es similar a %s en que ambos involucran %s.",
			"Como %s, esta situación demuestra %s.",
		},
		questionTemplates: []string{
			"¿Pero acaso no crees que %s?",
			"¿No te parece que %s?",
			"¿No es cierto que %s?",
		},
		refutationTemplates: []string{
			"Dices %q, pero esto pasa por alto el contexto más amplio.",
			"Dices %q, aunque esta perspectiva pierde consideraciones clave.",
			"Dices %q, pero esto no tiene en cuenta factores importantes.",
		},
		topicSwitch: "Sigamos centrados en %s; si quieres, abrimos otro hilo para %s.",
		reasoning: []string{
			"la evidencia respalda claramente este enfoque",
			"la investigación confirma esta perspectiva",
			"los datos indican este punto de vista",
			"los estudios demuestran esta posición",
			"el análisis valida esta postura",
			"la evidencia sustenta esta visión",
		},
		closings: []string{
			"Este enfoque ofrece la solución más sostenible a largo plazo.",
			"Estas consideraciones deben guiar nuestro proceso de toma de decisiones.",
			"La evidencia respalda claramente esta perspectiva.",
			"Este marco proporciona el camino más viable hacia adelante.",
			"Estos principios aseguran los resultados más efectivos.",
			"Esta estrategia ofrece los resultados más equilibrados.",
		},
		openings: []string{
			"Yo lo veo de otra manera.",
			"Permíteme cuestionar eso.",
			"Es una forma de verlo, pero no la mía.",
			"Yo discutiría esa lectura.",
		},
		bodies: []string{
			"Gran parte de esto es cuestión de gusto personal más que de hechos establecidos",
			"Personas razonables sopesan estas cosas de maneras muy distintas",
			"Lo que parece obvio aquí depende mucho de los supuestos de partida",
			"El atractivo de esa postura se desvanece al examinar las alternativas",
		},
		generalClosings: []string{
			"Así que no lo daría por zanjado.",
			"Por eso sigo sin estar convencido.",
			"En balance, la lectura contraria se sostiene mejor.",
			"Dejaría la pregunta abierta en lugar de concederla.",
		},
		fillers: []string{
			"creo que", "pienso que", "me parece que", "en mi opinión",
			"según", "para mí",
		},
		fallbackClaim: "su punto",
		exampleCues: []string{
			"ejemplo", "ejemplos", "por ejemplo", "dame un ejemplo",
		},
		topicNames: map[Topic]string{
			TopicClimate:    "el cambio climático",
			TopicTechnology: "la tecnología",
			TopicEducation:  "la educación",
		},
	},
}

var topics = map[Locale]map[Topic]*topicContent{
	LocaleEN: {
		TopicClimate: {
			keywords:   []string{"climate", "global warming", "carbon", "emissions", "environment", "renewable"},
			arguments:  []string{"renewable energy adoption", "carbon footprint reduction", "sustainable practices"},
			analogies:  []string{"maintaining a healthy diet", "caring for a garden", "preserving a family legacy"},
			principles: []string{"environmental stewardship", "sustainable living", "long-term thinking"},
			questions:  []string{"we can afford to ignore environmental consequences", "future generations matter", "planet health is important"},
			examples:   []string{"Consider how coastal cities already budget for rising seas.", "Look at how quickly solar costs fell once adoption scaled.", "Recall how acid rain receded only after emissions rules landed."},
		},
		TopicTechnology: {
			keywords:   []string{"technology", "ai", "artificial intelligence", "digital", "internet", "robots"},
			arguments:  []string{"innovation advancement", "efficiency improvements", "accessibility benefits"},
			analogies:  []string{"learning to drive", "using new tools", "adopting better methods"},
			principles: []string{"continuous improvement", "adaptation to change", "embracing progress"},
			questions:  []string{"progress should be halted due to minor concerns", "innovation benefits society", "efficiency matters"},
			examples:   []string{"Consider how translation tools opened travel to millions.", "Look at how remote work reshaped entire industries.", "Recall how early automation fears rarely matched outcomes."},
		},
		TopicEducation: {
			keywords:   []string{"education", "school", "learning", "student", "teacher", "knowledge"},
			arguments:  []string{"knowledge accessibility", "skill development", "future preparation"},
			analogies:  []string{"building a foundation", "planting seeds", "shaping minds"},
			principles: []string{"lifelong learning", "knowledge sharing", "intellectual growth"},
			questions:  []string{"knowledge should be restricted rather than shared", "education improves lives", "learning is valuable"},
			examples:   []string{"Consider how literacy campaigns transformed whole regions.", "Look at how apprenticeships blend theory with practice.", "Recall how open courseware reached students far from any campus."},
		},
		TopicGeneral: {
			keywords:   nil,
			arguments:  []string{"practical benefits", "long-term implications", "societal impact"},
			analogies:  []string{"tending a garden", "building a house", "running a marathon"},
			principles: []string{"careful planning", "consistent effort", "balanced approach"},
			questions:  []string{"we should avoid necessary improvements", "progress is important", "change is beneficial"},
			examples:   []string{"Consider how small daily choices compound over a year.", "Look at how habits outlast bursts of enthusiasm.", "Recall how second opinions often reverse first impressions."},
		},
	},
	LocaleES: {
		TopicClimate: {
			keywords:   []string{"clima", "calentamiento global", "carbono", "emisiones", "ambiente", "renovable"},
			arguments:  []string{"adopción de energía renovable", "reducción de huella de carbono", "prácticas sostenibles"},
			analogies:  []string{"mantener una dieta saludable", "cuidar un jardín", "preservar un legado familiar"},
			principles: []string{"cuidado ambiental", "vida sostenible", "pensamiento a largo plazo"},
			questions:  []string{"podemos ignorar las consecuencias ambientales", "las futuras generaciones importan", "la salud del planeta es importante"},
			examples:   []string{"Considera cómo las ciudades costeras ya presupuestan la subida del mar.", "Mira qué rápido bajó el costo solar al escalar la adopción.", "Recuerda cómo la lluvia ácida retrocedió solo tras regular las emisiones."},
		},
		TopicTechnology: {
			keywords:   []string{"tecnología", "inteligencia artificial", "digital", "internet", "robots", "máquinas"},
			arguments:  []string{"avance en innovación", "mejoras en eficiencia", "beneficios de accesibilidad"},
			analogies:  []string{"aprender a conducir", "usar nuevas herramientas", "adoptar mejores métodos"},
			principles: []string{"mejora continua", "adaptación al cambio", "adopción del progreso"},
			questions:  []string{"el progreso debe detenerse por preocupaciones menores", "la innovación beneficia a la sociedad", "la eficiencia importa"},
			examples:   []string{"Considera cómo los traductores abrieron los viajes a millones.", "Mira cómo el trabajo remoto transformó industrias enteras.", "Recuerda cómo los temores a la automatización rara vez se cumplieron."},
		},
		TopicEducation: {
			keywords:   []string{"educación", "escuela", "aprendizaje", "estudiante", "maestro", "conocimiento"},
			arguments:  []string{"accesibilidad al conocimiento", "desarrollo de habilidades", "preparación para el futuro"},
			analogies:  []string{"construir una base", "plantar semillas", "moldear mentes"},
			principles: []string{"aprendizaje de por vida", "compartir conocimiento", "crecimiento intelectual"},
			questions:  []string{"el conocimiento debe restringirse en lugar de compartirse", "la educación mejora vidas", "el aprendizaje es valioso"},
			examples:   []string{"Considera cómo las campañas de alfabetización transformaron regiones.", "Mira cómo los aprendizajes combinan teoría y práctica.", "Recuerda cómo los cursos abiertos llegaron lejos de todo campus."},
		},
		TopicGeneral: {
			keywords:   nil,
			arguments:  []string{"beneficios prácticos", "implicaciones a largo plazo", "impacto social"},
			analogies:  []string{"cuidar un jardín", "construir una casa", "correr un maratón"},
			principles: []string{"planificación cuidadosa", "esfuerzo consistente", "enfoque equilibrado"},
			questions:  []string{"debemos evitar mejoras necesarias", "el progreso es importante", "el cambio es beneficioso"},
			examples:   []string{"Considera cómo las pequeñas decisiones diarias se acumulan en un año.", "Mira cómo los hábitos duran más que los arranques de entusiasmo.", "Recuerda cómo una segunda opinión suele revertir la primera impresión."},
		},
	},
}

// localeMarkers feed the locale detector and the stance detector.
type localeMarkers struct {
	specificWords    []string
	patterns         []string
	negationMarkers  []string
	contraIndicators []string
	proIndicators    []string
}

var markers = map[Locale]*localeMarkers{
	LocaleES: {
		specificWords: []string{
			"que", "la", "el", "de", "y", "con", "se", "te", "le", "su", "por", "son", "como", "para",
			"del", "una", "vez", "más", "muy", "pero", "todo", "bien", "sí", "también", "ya", "otro",
			"hasta", "hacer", "qué", "cómo", "cuándo", "dónde", "creo", "pienso", "hola", "gracias",
		},
		patterns: []string{"inteligencia artificial", "tecnología", "cambio climático", "educación"},
		negationMarkers: []string{"no", "nunca", "jamás", "sin", "nada", "ningún", "ninguna"},
		contraIndicators: []string{
			"malo", "terrible", "peligroso", "dañino", "problemático", "preocupante",
			"contra", "opuesto", "rechazar", "evitar", "prohibir", "limitar",
		},
		proIndicators: []string{
			"bueno", "excelente", "beneficioso", "positivo", "apoyo", "mejor",
			"importante", "necesario", "útil", "valioso", "esencial", "genial", "fantástico",
			"increíble", "maravilloso", "revolucionario", "transformar", "mejorar",
		},
	},
	LocaleEN: {
		specificWords: []string{
			"the", "and", "that", "this", "with", "for", "you", "are", "from", "they", "have", "had",
			"will", "can", "would", "should", "about", "think", "believe", "hello", "thanks", "good",
		},
		patterns: []string{"artificial intelligence", "technology", "climate change", "education"},
		negationMarkers: []string{"not", "never", "no", "without", "nothing", "none"},
		contraIndicators: []string{
			"bad", "terrible", "dangerous", "harmful", "problematic", "concerning",
			"against", "oppose", "reject", "avoid", "ban", "limit", "restrict", "threat",
			"risk", "worry", "fear", "concern", "issue", "problem",
		},
		proIndicators: []string{
			"good", "great", "beneficial", "positive", "support", "better",
			"important", "necessary", "useful", "valuable", "essential", "amazing", "fantastic",
			"incredible", "wonderful", "revolutionary", "revolutionize", "transform", "improve",
		},
	},
}

// bank returns the content bank for a locale, falling back to English.
func bank(locale Locale) *contentBank {
	if b, ok := banks[locale]; ok {
		return b
	}
	return banks[LocaleEN]
}

// topicData returns the per-topic content for a locale and topic,
// falling back to the general entry.
func topicData(locale Locale, topic Topic) *topicContent {
	byTopic, ok := topics[locale]
	if !ok {
		byTopic = topics[LocaleEN]
	}
	if tc, ok := byTopic[topic]; ok {
		return tc
	}
	return byTopic[TopicGeneral]
}
