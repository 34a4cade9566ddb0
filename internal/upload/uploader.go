package upload

import "mime/multipart"

// Uploader is what handlers depend on; FakeUploader substitutes it in tests.
type Uploader interface {
	Save(fh *multipart.FileHeader) (string, error)
	SaveAll(fhs []*multipart.FileHeader) ([]string, error)
	Remove(publicPath string) error
}

type FakeUploader struct {
	SaveFn    func(fh *multipart.FileHeader) (string, error)
	SaveAllFn func(fhs []*multipart.FileHeader) ([]string, error)
	RemoveFn  func(publicPath string) error
}

func (f *FakeUploader) Save(fh *multipart.FileHeader) (string, error) {
	if f.SaveFn != nil {
		return f.SaveFn(fh)
	}
	panic("unexpected Save")
}

func (f *FakeUploader) SaveAll(fhs []*multipart.FileHeader) ([]string, error) {
	if f.SaveAllFn != nil {
		return f.SaveAllFn(fhs)
	}
	panic("unexpected SaveAll")
}

func (f *FakeUploader) Remove(publicPath string) error {
	if f.RemoveFn != nil {
		return f.RemoveFn(publicPath)
	}
	return nil
}
