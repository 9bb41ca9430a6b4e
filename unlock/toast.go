package unlock

type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastError
)

func (k ToastKind) String() string {
	switch k {
	case ToastSuccess:
		return "success"
	case ToastError:
		return "error"
	}
	return "unknown"
}

// Toast is a transient notification published on NoticeToast.
type Toast struct {
	Kind    ToastKind
	Message string
}
