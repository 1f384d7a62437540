package catalog

import "errors"

var (
	// ErrNoServices возвращается, когда каталог услуг пуст - размер слота не определён
	ErrNoServices = errors.New("catalog: service catalog is empty, slot size is undefined")

	// ErrMechanicWithoutBay возвращается, когда механику не назначен бокс
	ErrMechanicWithoutBay = errors.New("catalog: mechanic has no bay to work in")

	// ErrServiceTooLong возвращается, когда услуга не помещается в рабочий день
	ErrServiceTooLong = errors.New("catalog: service does not fit into a working day")

	// ErrServiceNotFound возвращается, когда услуга не найдена по имени или ID
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrMechanicNotFound возвращается, когда механик не найден
	ErrMechanicNotFound = errors.New("catalog: mechanic not found")

	// ErrBayNotFound возвращается, когда бокс не найден
	ErrBayNotFound = errors.New("catalog: bay not found")

	// ErrInternal возвращается при ошибках загрузки каталога из хранилища
	ErrInternal = errors.New("catalog: internal error")
)
