// Package upsert expõe o insert-or-update por chave natural como operação
// explícita, em vez de deixar a atomicidade implícita no dialeto SQL.
package upsert

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OnNaturalKey grava row de forma atômica: insere se a chave natural
// (keyColumns) não existe, senão sobrescreve apenas updateColumns.
// Um único statement — duas chamadas concorrentes com a mesma chave nunca
// produzem linha duplicada; vence a última.
func OnNaturalKey(db *gorm.DB, keyColumns []string, updateColumns []string, row interface{}) error {
	cols := make([]clause.Column, 0, len(keyColumns))
	for _, name := range keyColumns {
		cols = append(cols, clause.Column{Name: name})
	}

	return db.Clauses(clause.OnConflict{
		Columns:   cols,
		DoUpdates: clause.AssignmentColumns(updateColumns),
	}).Create(row).Error
}
