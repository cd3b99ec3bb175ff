package repository

// SequenceRepository entrega números consecutivos por empresa y prefijo para los
// números de negocio de los movimientos (RCP, DLV, TRF, ADJ). La implementación
// debe garantizar ausencia de colisiones bajo concurrencia.
type SequenceRepository interface {
	Next(companyID, prefix string) (int64, error)
}
