package reports

// ReportKind names one of the five fixed aggregation reports. The values
// double as URL path segments and CSV export filenames.
type ReportKind string

const (
	MemberProgress   ReportKind = "progreso"
	SessionFrequency ReportKind = "sesiones"
	PopularExercises ReportKind = "ejercicios"
	CoachWorkload    ReportKind = "entrenadores"
	MembershipTrends ReportKind = "membresias"
)

// Default range bounds substituted when a date-range filter is partially
// supplied. Chosen so an unbounded range never excludes rows.
const (
	DefaultStartDate = "2000-01-01"
	DefaultEndDate   = "2099-12-31"
)

const (
	startDateKey = "fecha_inicio"
	endDateKey   = "fecha_fin"
)

// FilterSpec declares one optional filter: its request key, value kind and
// the predicate it contributes. Predicate is a fmt template whose single %d
// becomes the positional parameter index. Default, when set, is the raw value
// used whenever the filter is absent, so the predicate is always applied.
type FilterSpec struct {
	Key       string
	Kind      Kind
	Predicate string
	Default   string
}

// Definition is the declarative shape of a report: base select with its
// joins, the column the date range applies to, the ordered optional filters,
// and grouping/having/ordering. Filters only ever contribute conjunctive
// predicates; they never change the joins.
type Definition struct {
	Kind       ReportKind
	BaseQuery  string
	DateColumn string
	Filters    []FilterSpec
	GroupBy    string
	Having     *FilterSpec
	OrderBy    string
}

var definitions = map[ReportKind]Definition{
	MemberProgress: {
		Kind: MemberProgress,
		BaseQuery: `SELECT m.nombre, rp.fecha, rp.peso, rp.porcentaje_grasa_corporal, rp.imc
			FROM registro_progreso rp
			JOIN miembros m ON rp.miembro_id = m.miembro_id`,
		DateColumn: "rp.fecha",
		Filters: []FilterSpec{
			{Key: "miembro_id", Kind: KindPositiveInt, Predicate: "rp.miembro_id = $%d"},
			{Key: "imc_min", Kind: KindPositiveFloat, Predicate: "rp.imc >= $%d"},
		},
	},
	SessionFrequency: {
		Kind: SessionFrequency,
		BaseQuery: `SELECT e.nombre AS entrenador, m.nombre AS miembro, COUNT(*) AS sesiones
			FROM sesiones_entrenamiento se
			JOIN entrenadores e ON se.entrenador_id = e.entrenador_id
			JOIN miembros m ON se.miembro_id = m.miembro_id`,
		DateColumn: "se.fecha",
		Filters: []FilterSpec{
			{Key: "entrenador_id", Kind: KindPositiveInt, Predicate: "se.entrenador_id = $%d"},
			{Key: "hora_inicio", Kind: KindTimeHHMM, Predicate: "se.hora >= $%d", Default: "00:00"},
		},
		GroupBy: "e.nombre, m.nombre",
	},
	PopularExercises: {
		Kind: PopularExercises,
		BaseQuery: `SELECT ej.nombre, ej.tipo, COUNT(*) AS veces
			FROM detalle_entrenamiento dt
			JOIN ejercicios ej ON dt.ejercicio_id = ej.ejercicio_id
			JOIN sesiones_entrenamiento se ON dt.sesion_id = se.sesion_id
			LEFT JOIN ejercicio_grupo_muscular eg ON ej.ejercicio_id = eg.ejercicio_id`,
		DateColumn: "se.fecha",
		Filters: []FilterSpec{
			{Key: "tipo_ejercicio", Kind: KindText, Predicate: "ej.tipo = $%d"},
			{Key: "grupo_muscular", Kind: KindText, Predicate: "eg.grupo_muscular = $%d"},
		},
		GroupBy: "ej.nombre, ej.tipo",
		OrderBy: "veces DESC",
	},
	CoachWorkload: {
		Kind: CoachWorkload,
		BaseQuery: `SELECT e.nombre, e.especializacion, COUNT(se.sesion_id) AS sesiones
			FROM entrenadores e
			LEFT JOIN sesiones_entrenamiento se ON e.entrenador_id = se.entrenador_id`,
		DateColumn: "se.fecha",
		Filters: []FilterSpec{
			{Key: "especializacion", Kind: KindText, Predicate: "e.especializacion = $%d"},
		},
		GroupBy: "e.nombre, e.especializacion",
		Having:  &FilterSpec{Key: "sesiones_min", Kind: KindPositiveInt, Predicate: "COUNT(se.sesion_id) >= $%d"},
	},
	MembershipTrends: {
		Kind: MembershipTrends,
		BaseQuery: `SELECT pm.nombre AS plan, COUNT(mb.membresia_id) AS membresias
			FROM membresias mb
			JOIN planes_membresia pm ON mb.plan_id = pm.plan_id`,
		DateColumn: "mb.fecha_inicio",
		Filters: []FilterSpec{
			{Key: "plan_id", Kind: KindPositiveInt, Predicate: "mb.plan_id = $%d"},
			{Key: "duracion_min", Kind: KindPositiveInt, Predicate: "pm.duracion_meses >= $%d"},
		},
		GroupBy: "pm.nombre",
	},
}

// DefinitionFor returns the declarative definition of a report kind.
func DefinitionFor(kind ReportKind) (Definition, bool) {
	def, ok := definitions[kind]
	return def, ok
}

// Kinds lists every report kind in route registration order.
func Kinds() []ReportKind {
	return []ReportKind{MemberProgress, SessionFrequency, PopularExercises, CoachWorkload, MembershipTrends}
}

// FilterKeys lists the recognized filter keys of a report kind, date range
// first. Handlers use it to pick filters out of a request.
func FilterKeys(kind ReportKind) []string {
	def, ok := definitions[kind]
	if !ok {
		return nil
	}
	keys := []string{startDateKey, endDateKey}
	for _, spec := range def.Filters {
		keys = append(keys, spec.Key)
	}
	if def.Having != nil {
		keys = append(keys, def.Having.Key)
	}
	return keys
}
