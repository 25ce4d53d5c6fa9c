// Package panels provides the editor's side form panel.
package panels

import (
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"banner-studio/internal/app"
	"banner-studio/internal/banner"
	"banner-studio/internal/export"
	"banner-studio/internal/imageio"
	"banner-studio/internal/transform"
	"banner-studio/ui/prefs"
)

const prefKeyLastImageDir = "lastImageDirectory"

// FormPanel is the side form: background controls, text fields, and the
// export button. Every edit flows through the store's single update entry
// point; the panel itself keeps no document state.
type FormPanel struct {
	store    *app.Store
	ctrl     *transform.Controller
	exporter *export.Exporter
	prefs    *prefs.Prefs
	window   fyne.Window

	container fyne.CanvasObject

	nameEntry     *widget.Entry
	dateEntry     *widget.Entry
	discountEntry *widget.Entry
	typeEntry     *widget.Entry
	dishEntry     *widget.Entry
	newPriceEntry *widget.Entry
	oldPriceEntry *widget.Entry
	menuURLEntry  *widget.Entry

	zoomSlider *widget.Slider
	zoomLabel  *widget.Label
	exportBtn  *widget.Button
	exportBusy *widget.ProgressBarInfinite
}

// NewFormPanel creates the form bound to the store.
func NewFormPanel(store *app.Store, ctrl *transform.Controller, exporter *export.Exporter, p *prefs.Prefs) *FormPanel {
	fp := &FormPanel{
		store:    store,
		ctrl:     ctrl,
		exporter: exporter,
		prefs:    p,
	}

	fp.buildWidgets()
	fp.container = fp.buildLayout()

	store.On(app.EventStateChanged, func(data interface{}) {
		if st, ok := data.(banner.State); ok {
			fp.syncZoom(st.BgScale)
		}
	})
	exporter.OnStatus(fp.applyExportStatus)

	return fp
}

// Container returns the panel container.
func (fp *FormPanel) Container() fyne.CanvasObject {
	return fp.container
}

// SetWindow sets the parent window for dialogs.
func (fp *FormPanel) SetWindow(w fyne.Window) {
	fp.window = w
}

func (fp *FormPanel) buildWidgets() {
	st := fp.store.State()

	fp.nameEntry = fp.textEntry(st.RestaurantName, func(p *banner.Patch, v *string) { p.RestaurantName = v })
	fp.dateEntry = fp.textEntry(st.ExpirationDate, func(p *banner.Patch, v *string) { p.ExpirationDate = v })
	fp.discountEntry = fp.textEntry(st.DiscountPercentage, func(p *banner.Patch, v *string) { p.DiscountPercentage = v })
	fp.dishEntry = fp.textEntry(st.DishName, func(p *banner.Patch, v *string) { p.DishName = v })
	fp.newPriceEntry = fp.textEntry(st.PriceWithDiscount, func(p *banner.Patch, v *string) { p.PriceWithDiscount = v })
	fp.oldPriceEntry = fp.textEntry(st.OriginalPrice, func(p *banner.Patch, v *string) { p.OriginalPrice = v })
	fp.menuURLEntry = fp.textEntry(st.MenuURL, func(p *banner.Patch, v *string) { p.MenuURL = v })

	fp.typeEntry = widget.NewMultiLineEntry()
	fp.typeEntry.SetText(st.DiscountType)
	fp.typeEntry.OnChanged = func(v string) {
		fp.store.Update(banner.Patch{DiscountType: &v})
	}

	fp.zoomLabel = widget.NewLabel(zoomText(st.BgScale))
	fp.zoomSlider = widget.NewSlider(banner.MinBgScale, banner.MaxBgScale)
	fp.zoomSlider.Step = 0.01
	fp.zoomSlider.Value = st.BgScale
	fp.zoomSlider.OnChanged = func(v float64) {
		fp.ctrl.SetScale(v)
	}

	fp.exportBusy = widget.NewProgressBarInfinite()
	fp.exportBusy.Hide()
	fp.exportBtn = widget.NewButton("Скачать PNG", fp.Export)
}

// textEntry builds a single-line entry publishing the chosen patch field.
func (fp *FormPanel) textEntry(initial string, set func(*banner.Patch, *string)) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(initial)
	e.OnChanged = func(v string) {
		var p banner.Patch
		set(&p, &v)
		fp.store.Update(p)
	}
	return e
}

func (fp *FormPanel) buildLayout() fyne.CanvasObject {
	uploadBtn := widget.NewButton("Загрузить фото", fp.onUpload)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Фон и зум", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		uploadBtn,
		container.NewBorder(nil, nil, nil, fp.zoomLabel, fp.zoomSlider),
		widget.NewSeparator(),

		widget.NewLabelWithStyle("Инфо ресторана", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Название"),
		fp.nameEntry,
		widget.NewLabel("Дата акции"),
		fp.dateEntry,
		widget.NewSeparator(),

		widget.NewLabelWithStyle("Параметры скидки", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Число"),
		fp.discountEntry,
		widget.NewLabel("Тип (текст)"),
		fp.typeEntry,
		widget.NewSeparator(),

		widget.NewLabelWithStyle("Меню и цены", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Название блюда"),
		fp.dishEntry,
		widget.NewLabel("Новая цена"),
		fp.newPriceEntry,
		widget.NewLabel("Старая цена"),
		fp.oldPriceEntry,
		widget.NewLabel("Ссылка на меню (QR)"),
		fp.menuURLEntry,
	)

	footer := container.NewVBox(fp.exportBusy, fp.exportBtn)
	return container.NewBorder(nil, footer, nil, nil, container.NewVScroll(form))
}

// syncZoom reflects wheel-driven zoom changes back into the slider.
func (fp *FormPanel) syncZoom(scale float64) {
	fp.zoomLabel.SetText(zoomText(scale))
	if fp.zoomSlider.Value != scale {
		fp.zoomSlider.Value = scale
		fp.zoomSlider.Refresh()
	}
}

func zoomText(scale float64) string {
	return fmt.Sprintf("%d%%", int(scale*100+0.5))
}

// applyExportStatus disables the export control while an export is in
// flight, so a second rasterization can never start.
func (fp *FormPanel) applyExportStatus(status export.Status) {
	if status == export.StatusExporting {
		fp.exportBtn.Disable()
		fp.exportBusy.Show()
		return
	}
	fp.exportBtn.Enable()
	fp.exportBusy.Hide()
}

// Export runs the export pipeline off the UI thread and reports any failure
// in an error dialog. The export button and the File menu both come through
// here, so every failure surfaces the same way.
func (fp *FormPanel) Export() {
	st := fp.store.State()
	fp.store.Emit(app.EventExportStarted, nil)
	go func() {
		path, err := fp.exporter.Export(st)
		if err != nil {
			log.Printf("export failed: %v", err)
			if fp.window != nil {
				dialog.ShowError(err, fp.window)
			}
			return
		}
		log.Printf("exported %s", path)
		fp.store.Emit(app.EventExportFinished, path)
	}()
}

func (fp *FormPanel) onUpload() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, fp.window)
			return
		}
		if rc == nil {
			// Dialog dismissed: no state change.
			return
		}
		path := rc.URI().Path()
		rc.Close()

		bg, err := imageio.Load(path)
		if err != nil {
			dialog.ShowError(err, fp.window)
			return
		}
		fp.prefs.SetString(prefKeyLastImageDir, filepath.Dir(path))
		fp.store.Update(banner.Patch{Background: bg})
		fp.store.Emit(app.EventBackgroundLoaded, bg.Source)
	}, fp.window)

	fd.SetFilter(storage.NewExtensionFileFilter(imageio.SupportedExtensions()))
	if last := fp.prefs.String(prefKeyLastImageDir); last != "" {
		if uri, err := storage.ParseURI("file://" + last); err == nil {
			if lister, err := storage.ListerForURI(uri); err == nil {
				fd.SetLocation(lister)
			}
		}
	}
	fd.Show()
}
