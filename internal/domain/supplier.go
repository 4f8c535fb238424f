package domain

// SupplierStatus — статус подключения API поставщика.
type SupplierStatus string

const (
	SupplierConnected    SupplierStatus = "connected"
	SupplierDisconnected SupplierStatus = "disconnected"
)

// Supplier описывает поставщика дропшиппинга. В текущей версии набор
// поставщиков статичен и доступен только для чтения.
type Supplier struct {
	ID        string
	Name      string
	APIStatus SupplierStatus
	AutoSync  bool
}
