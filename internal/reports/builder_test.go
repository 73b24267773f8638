package reports

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMemberProgressNoFilters(t *testing.T) {
	query, err := Build(MemberProgress, map[string]string{})
	require.NoError(t, err)

	assert.NotContains(t, query.SQL, "WHERE")
	assert.Empty(t, query.Args)
	assert.Contains(t, query.SQL, "FROM registro_progreso rp")
	assert.Contains(t, query.SQL, "JOIN miembros m ON rp.miembro_id = m.miembro_id")
}

func TestBuildMemberProgressAllFilters(t *testing.T) {
	query, err := Build(MemberProgress, map[string]string{
		"fecha_inicio": "2024-01-01",
		"fecha_fin":    "2024-06-30",
		"miembro_id":   "7",
		"imc_min":      "25.5",
	})
	require.NoError(t, err)

	assert.Contains(t, query.SQL, "WHERE rp.fecha BETWEEN $1 AND $2 AND rp.miembro_id = $3 AND rp.imc >= $4")
	assert.Equal(t, []any{"2024-01-01", "2024-06-30", int64(7), 25.5}, query.Args)
}

func TestBuildDateRangeAppliedWhenEitherBoundPresent(t *testing.T) {
	query, err := Build(MemberProgress, map[string]string{"fecha_inicio": "2024-01-01"})
	require.NoError(t, err)
	assert.Contains(t, query.SQL, "rp.fecha BETWEEN $1 AND $2")
	assert.Equal(t, []any{"2024-01-01", DefaultEndDate}, query.Args)

	query, err = Build(MemberProgress, map[string]string{"fecha_fin": "2024-06-30"})
	require.NoError(t, err)
	assert.Contains(t, query.SQL, "rp.fecha BETWEEN $1 AND $2")
	assert.Equal(t, []any{DefaultStartDate, "2024-06-30"}, query.Args)
}

func TestBuildSessionFrequencyAppliesDefaultStartTime(t *testing.T) {
	query, err := Build(SessionFrequency, map[string]string{})
	require.NoError(t, err)

	assert.Contains(t, query.SQL, "WHERE se.hora >= $1")
	assert.Equal(t, []any{"00:00"}, query.Args)
	assert.True(t, strings.HasSuffix(query.SQL, "GROUP BY e.nombre, m.nombre"))
}

func TestBuildSessionFrequencyAllFilters(t *testing.T) {
	query, err := Build(SessionFrequency, map[string]string{
		"fecha_inicio":  "2024-01-01",
		"fecha_fin":     "2024-12-31",
		"entrenador_id": "3",
		"hora_inicio":   "18:00",
	})
	require.NoError(t, err)

	assert.Contains(t, query.SQL, "se.fecha BETWEEN $1 AND $2 AND se.entrenador_id = $3 AND se.hora >= $4")
	assert.Equal(t, []any{"2024-01-01", "2024-12-31", int64(3), "18:00"}, query.Args)
}

func TestBuildPopularExercisesOrdersByCountDescending(t *testing.T) {
	query, err := Build(PopularExercises, map[string]string{
		"tipo_ejercicio": "Fuerza",
		"grupo_muscular": "Pecho",
	})
	require.NoError(t, err)

	assert.Contains(t, query.SQL, "LEFT JOIN ejercicio_grupo_muscular eg")
	assert.Contains(t, query.SQL, "WHERE ej.tipo = $1 AND eg.grupo_muscular = $2")
	assert.True(t, strings.HasSuffix(query.SQL, "ORDER BY veces DESC"))
	assert.Equal(t, []any{"Fuerza", "Pecho"}, query.Args)
}

func TestBuildCoachWorkloadHavingOnlyWithMinimum(t *testing.T) {
	query, err := Build(CoachWorkload, map[string]string{})
	require.NoError(t, err)
	assert.NotContains(t, query.SQL, "HAVING")

	query, err = Build(CoachWorkload, map[string]string{"sesiones_min": "5"})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(query.SQL, "GROUP BY e.nombre, e.especializacion HAVING COUNT(se.sesion_id) >= $1"))
	assert.Equal(t, []any{int64(5)}, query.Args)
}

func TestBuildCoachWorkloadHavingParameterAfterWherePredicates(t *testing.T) {
	query, err := Build(CoachWorkload, map[string]string{
		"fecha_inicio":    "2024-01-01",
		"especializacion": "Cardio",
		"sesiones_min":    "2",
	})
	require.NoError(t, err)

	assert.Contains(t, query.SQL, "WHERE se.fecha BETWEEN $1 AND $2 AND e.especializacion = $3")
	assert.Contains(t, query.SQL, "HAVING COUNT(se.sesion_id) >= $4")
	assert.Equal(t, []any{"2024-01-01", DefaultEndDate, "Cardio", int64(2)}, query.Args)
}

func TestBuildMembershipTrends(t *testing.T) {
	query, err := Build(MembershipTrends, map[string]string{
		"plan_id":      "2",
		"duracion_min": "6",
	})
	require.NoError(t, err)

	assert.Contains(t, query.SQL, "WHERE mb.plan_id = $1 AND pm.duracion_meses >= $2")
	assert.True(t, strings.HasSuffix(query.SQL, "GROUP BY pm.nombre"))
	assert.Equal(t, []any{int64(2), int64(6)}, query.Args)
}

func TestBuildRejectsInvalidFilterBeforeComposing(t *testing.T) {
	_, err := Build(MemberProgress, map[string]string{"miembro_id": "not-a-number"})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "miembro_id", validationErr.Field)
}

func TestBuildUnknownKind(t *testing.T) {
	_, err := Build(ReportKind("inexistente"), nil)
	require.Error(t, err)
}

func TestBuildRejectsDuplicateFilterBinding(t *testing.T) {
	kind := ReportKind("duplicada")
	definitions[kind] = Definition{
		Kind:       kind,
		BaseQuery:  "SELECT 1",
		DateColumn: "fecha",
		Filters: []FilterSpec{
			{Key: "plan_id", Kind: KindPositiveInt, Predicate: "plan_id = $%d"},
			{Key: "plan_id", Kind: KindPositiveInt, Predicate: "plan_id = $%d"},
		},
	}
	t.Cleanup(func() { delete(definitions, kind) })

	_, err := Build(kind, map[string]string{})
	require.ErrorIs(t, err, ErrInvalidFilterCombination)
}

func TestBuildNeverInterpolatesRawValues(t *testing.T) {
	query, err := Build(PopularExercises, map[string]string{
		"tipo_ejercicio": "Fuerza'; DROP TABLE ejercicios; --",
	})
	require.NoError(t, err)

	assert.NotContains(t, query.SQL, "DROP TABLE")
	assert.Equal(t, []any{"Fuerza'; DROP TABLE ejercicios; --"}, query.Args)
}

func TestFilterKeys(t *testing.T) {
	assert.Equal(t,
		[]string{"fecha_inicio", "fecha_fin", "miembro_id", "imc_min"},
		FilterKeys(MemberProgress))
	assert.Equal(t,
		[]string{"fecha_inicio", "fecha_fin", "especializacion", "sesiones_min"},
		FilterKeys(CoachWorkload))
	assert.Nil(t, FilterKeys(ReportKind("inexistente")))
}

func TestKindsCoversAllDefinitions(t *testing.T) {
	assert.Len(t, Kinds(), len(definitions))
	for _, kind := range Kinds() {
		_, ok := DefinitionFor(kind)
		assert.True(t, ok, "kind %s", kind)
	}
}
