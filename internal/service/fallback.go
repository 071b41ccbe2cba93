package service

import "cyber-advisor/internal/models"

const lastResortAdvice = "اتبع أفضل الممارسات الأساسية: تحديثات، كلمات مرور قوية، MFA، وحذر من الروابط والمرفقات."

// AdviceTable holds the static per-category fallback advice.
type AdviceTable map[models.Category]string

// DefaultAdvice returns the built-in advice table.
func DefaultAdvice() AdviceTable {
	return AdviceTable{
		models.CategoryPhishing: "تأكد من عنوان المرسل والروابط قبل النقر. لا تُدخل بياناتك في صفحات غير موثوقة. " +
			"فعّل المصادقة متعددة العوامل، وأبلغ عن الرسالة إن كانت مشبوهة.",
		models.CategoryPasswords: "استخدم كلمات مرور طويلة وفريدة مع مدير كلمات المرور. فعّل المصادقة متعددة العوامل " +
			"ولا تعِد استخدام نفس الكلمة في أكثر من موقع.",
		models.CategoryMalware: "حدّث النظام ومضاد الفيروسات. لا تفتح المرفقات المشبوهة. افصل الجهاز عن الشبكة وابدأ فحصاً كاملاً، " +
			"واستعد من النسخ الاحتياطية إن لزم.",
		models.CategoryNetworks: "فعّل تشفير WPA2/WPA3، وبدّل كلمة مرور الراوتر الافتراضية. حدّث الراوتر دورياً، وفعّل جدار الحماية.",
		models.CategoryIncidentResponse: "غيّر كلمات المرور وفعّل MFA فوراً. أوقف الجلسات المشبوهة، راجع السجلات، تواصل مع الدعم الأمني، " +
			"واجرِ فحوصات للأجهزة.",
		models.CategoryGeneral: lastResortAdvice,
	}
}

// Fallback returns the advice for category, then general's, and is never empty.
func (t AdviceTable) Fallback(category models.Category) string {
	if advice := t[category]; advice != "" {
		return advice
	}
	if advice := t[models.CategoryGeneral]; advice != "" {
		return advice
	}
	return lastResortAdvice
}
