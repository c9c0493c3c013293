package docrender

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"exportpro/internal/core/domain/model/document"
	"exportpro/internal/core/ports"
	"exportpro/internal/pkg/errs"
)

var _ ports.DocumentRenderer = &HTMLRenderer{}

// HTMLRenderer produces one HTML file per document into a flat directory.
// The artifact name is "<kind>_<order number>.html".
type HTMLRenderer struct {
	dir       string
	templates *template.Template
}

func NewHTMLRenderer(dir string) (*HTMLRenderer, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.NewRenderError("documents directory", err)
	}
	return &HTMLRenderer{
		dir:       dir,
		templates: documentTemplates,
	}, nil
}

func (r *HTMLRenderer) Render(ctx context.Context, content document.Content) (string, error) {
	if err := content.Kind.Validate(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, content.Kind.String(), newDocumentView(content)); err != nil {
		return "", errs.NewRenderError(content.Kind.String(), err)
	}

	filename := fmt.Sprintf("%s_%s.html", content.Kind, content.OrderNumber)
	if err := os.WriteFile(filepath.Join(r.dir, filename), buf.Bytes(), 0o644); err != nil {
		return "", errs.NewRenderError(content.Kind.String(), err)
	}
	return filename, nil
}

// documentView flattens Content into the fields the templates print.
type documentView struct {
	document.Content
	Title             string
	IssuedOn          string
	CertificateNumber string
	Packages          []packageLine
}

// packageLine is one packing list row with its 1-based package number.
type packageLine struct {
	document.LineView
	PackageNumber int
}

func newDocumentView(content document.Content) documentView {
	packages := make([]packageLine, 0, len(content.Lines))
	for i, line := range content.Lines {
		packages = append(packages, packageLine{LineView: line, PackageNumber: i + 1})
	}
	return documentView{
		Content:           content,
		Title:             documentTitle(content.Kind) + " - " + content.OrderNumber,
		IssuedOn:          content.IssuedAt.Format("2006-01-02"),
		CertificateNumber: fmt.Sprintf("COO-%s-001", content.OrderNumber),
		Packages:          packages,
	}
}

func documentTitle(kind document.Kind) string {
	switch kind {
	case document.KindCommercialInvoice:
		return "Commercial Invoice"
	case document.KindPackingList:
		return "Packing List"
	case document.KindCertificateOfOrigin:
		return "Certificate of Origin"
	case document.KindPhytosanitaryCertificate:
		return "Phytosanitary Certificate"
	default:
		return string(kind)
	}
}

var documentTemplates = template.Must(template.New("documents").Parse(`
{{define "head"}}<!DOCTYPE html>
<html>
<head>
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; }
.header { text-align: center; border-bottom: 2px solid #333; padding-bottom: 20px; }
.section { margin: 20px 0; line-height: 1.6; }
.items-table { width: 100%; border-collapse: collapse; margin: 20px 0; }
.items-table th, .items-table td { border: 1px solid #ddd; padding: 8px; text-align: left; }
.total { text-align: right; font-weight: bold; margin-top: 20px; }
</style>
</head>
<body>{{end}}

{{define "commercial_invoice"}}{{template "head" .}}
<div class="header">
<h1>COMMERCIAL INVOICE</h1>
<p>Invoice Number: {{.OrderNumber}}</p>
<p>Date: {{.IssuedOn}}</p>
</div>
<div class="section">
<h3>Bill To:</h3>
<p>{{.ClientCompany}}</p>
<p>{{.ClientContact}}</p>
<p>{{.ClientEmail}}</p>
</div>
<div class="section">
<h3>Invoice Details:</h3>
<p><strong>Order Number:</strong> {{.OrderNumber}}</p>
<p><strong>Currency:</strong> {{.Currency}}</p>
<p><strong>Payment Terms:</strong> {{.PaymentTerms}}</p>
<p><strong>Delivery Terms:</strong> {{.DeliveryTerms}}</p>
</div>
<table class="items-table">
<thead><tr><th>Product</th><th>Quantity</th><th>Unit Price</th><th>Total</th></tr></thead>
<tbody>
{{range .Lines}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>&#8377;{{.UnitPrice}}</td><td>&#8377;{{.Total}}</td></tr>
{{end}}</tbody>
</table>
<div class="total"><h3>Total Amount: &#8377;{{.TotalValue}}</h3></div>
</body>
</html>
{{end}}

{{define "packing_list"}}{{template "head" .}}
<div class="header">
<h1>PACKING LIST</h1>
<p>Order Number: {{.OrderNumber}}</p>
<p>Date: {{.IssuedOn}}</p>
</div>
<div class="section">
<h3>Packing Details:</h3>
<p><strong>Total Packages:</strong> {{.PackageCount}}</p>
<p><strong>Total Weight:</strong> {{.TotalWeightKg}} kg</p>
</div>
<table class="items-table">
<thead><tr><th>Product</th><th>Quantity</th><th>Package Number</th><th>Weight (kg)</th></tr></thead>
<tbody>
{{range .Packages}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{.PackageNumber}}</td><td>{{.WeightKg}}</td></tr>
{{end}}</tbody>
</table>
</body>
</html>
{{end}}

{{define "certificate_of_origin"}}{{template "head" .}}
<div class="header">
<h1>CERTIFICATE OF ORIGIN</h1>
<p>Certificate Number: {{.CertificateNumber}}</p>
<p>Date: {{.IssuedOn}}</p>
</div>
<div class="section">
<p>This is to certify that the goods described below are of Indian origin:</p>
<h3>Goods Description:</h3>
<p>Agricultural products and spices exported under Order Number: {{.OrderNumber}}</p>
<h3>Origin Criteria:</h3>
<p>These goods have been wholly obtained in India and meet the requirements for preferential treatment.</p>
<h3>Declaration:</h3>
<p>I hereby declare that the above information is correct and that the goods described above are of Indian origin.</p>
<p style="margin-top: 40px;">
<strong>Authorized Signature:</strong> _________________<br>
<strong>Date:</strong> {{.IssuedOn}}<br>
<strong>Stamp:</strong> _________________
</p>
</div>
</body>
</html>
{{end}}

{{define "phytosanitary_certificate"}}{{template "head" .}}
<div class="header">
<h1>PHYTOSANITARY CERTIFICATE</h1>
<p>Order Number: {{.OrderNumber}}</p>
<p>Date: {{.IssuedOn}}</p>
</div>
<div class="section">
<p>This is to certify that the plants and plant products described below have been inspected and are considered free from quarantine pests:</p>
<h3>Consignment Description:</h3>
<table class="items-table">
<thead><tr><th>Product</th><th>Quantity</th><th>Weight (kg)</th></tr></thead>
<tbody>
{{range .Lines}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{.WeightKg}}</td></tr>
{{end}}</tbody>
</table>
<h3>Additional Declaration:</h3>
<p>The consignment conforms with the phytosanitary requirements of the importing country.</p>
<p style="margin-top: 40px;">
<strong>Inspecting Officer:</strong> _________________<br>
<strong>Date:</strong> {{.IssuedOn}}<br>
<strong>Official Stamp:</strong> _________________
</p>
</div>
</body>
</html>
{{end}}
`))
